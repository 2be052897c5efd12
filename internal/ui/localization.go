package ui

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	getenv          func(string) string
}

// Language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
	LangItalian = "it"
)

var localeMatcher = language.NewMatcher([]language.Tag{language.English, language.Italian})

// Text keys for localization
const (
	KeyAppTitle = "app_title"
	KeyReady    = "ready"
	KeyApply    = "apply"
	KeyCancel   = "cancel"
	KeySave     = "save"
	KeyBrowse   = "browse"
	KeyYes      = "yes"
	KeyNo       = "no"
	KeyClose    = "close"

	KeyFile           = "file"
	KeyOpenCue        = "open_cue"
	KeyOpenOutputDir  = "open_output_dir"
	KeyWorkNotes      = "work_notes"
	KeyExit           = "exit"
	KeyGoto           = "goto"
	KeyConfigDir      = "config_dir"
	KeyLogsDir        = "logs_dir"
	KeyHelp           = "help"
	KeyUserGuide      = "user_guide"
	KeyWiki           = "wiki"
	KeyIssueTracker   = "issue_tracker"
	KeyFFmpegDocs     = "ffmpeg_docs"
	KeyCheckRelease   = "check_release"
	KeyAbout          = "about"
	KeyAboutText      = "about_text"
	KeyVersion        = "version"
	KeyToolTrackTag   = "tool_track_tag"
	KeyToolProperties = "tool_properties"
	KeyToolStart      = "tool_start"
	KeyToolAbort      = "tool_abort"
	KeyToolSettings   = "tool_settings"
	KeyToolLogs       = "tool_logs"

	KeyCueFile     = "cue_file"
	KeyImportCue   = "import_cue"
	KeyOutputDir   = "output_dir"
	KeyFormat      = "format"
	KeyQuality     = "quality"
	KeyCodecCopy   = "codec_copy"
	KeyColTrack    = "col_track"
	KeyColArtist   = "col_artist"
	KeyColTitle    = "col_title"
	KeyColDuration = "col_duration"
	KeyColAlbum    = "col_album"

	KeyStatusProcessing  = "status_processing"
	KeyStatusProgress    = "status_progress"
	KeyStatusAborting    = "status_aborting"
	KeyStatusInterrupted = "status_interrupted"
	KeyStatusError       = "status_error"
	KeyStatusFinished    = "status_finished"
	KeySuccess           = "success"
	KeySuccessBody       = "success_body"
	KeyErrorTitle        = "error_title"
	KeyErrorBody         = "error_body"

	KeyConflictTitle = "conflict_title"
	KeyConflictBody  = "conflict_body"
	KeyOverwriteAll  = "overwrite_all"
	KeySkip          = "skip"
	KeySkippedTracks = "skipped_tracks"

	KeyConfirmTitle = "confirm_title"
	KeyKillConfirm  = "kill_confirm"
	KeyExitConfirm  = "exit_confirm"

	KeyNoLogs          = "no_logs"
	KeyLogWindowTitle  = "log_window_title"
	KeyLogFileList     = "log_file_list"
	KeyLogMessages     = "log_messages"
	KeyRefresh         = "refresh"
	KeyClearLog        = "clear_log"
	KeySelectLog       = "select_log"
	KeyClearLogConfirm = "clear_log_confirm"
	KeyShowInFolder    = "show_in_folder"

	KeyTrackTagTitle = "track_tag_title"
	KeyTagArtist     = "tag_artist"
	KeyTagAlbum      = "tag_album"
	KeyTagTitle      = "tag_title"
	KeyTagGenre      = "tag_genre"
	KeyTagDate       = "tag_date"
	KeyTagDiscID     = "tag_disc_id"
	KeyTagComment    = "tag_comment"
	KeyCDInfoTitle   = "cd_info_title"

	KeySetupTitle      = "setup_title"
	KeyTabMisc         = "tab_misc"
	KeyClearLogsOnExit = "clear_logs_on_exit"
	KeyWarnExit        = "warn_exit"
	KeyTabFile         = "tab_file"
	KeyOutputPrompt    = "output_prompt"
	KeyTabFFmpeg       = "tab_ffmpeg"
	KeyExecPaths       = "exec_paths"
	KeyCustomFFmpeg    = "custom_ffmpeg"
	KeyCustomFFprobe   = "custom_ffprobe"
	KeyTabAppearance   = "tab_appearance"
	KeyIconTheme       = "icon_theme"
	KeyToolbarPos      = "toolbar_pos"
	KeyToolbarTop      = "toolbar_top"
	KeyToolbarBottom   = "toolbar_bottom"
	KeyToolbarRight    = "toolbar_right"
	KeyToolbarLeft     = "toolbar_left"
	KeyToolbarSize     = "toolbar_size"
	KeyToolbarText     = "toolbar_text"
	KeyTabLogging      = "tab_logging"
	KeyLogLevelHint    = "log_level_hint"
	KeyLanguage        = "language"
	KeySystemLanguage  = "system_language"
	KeyRestartRequired = "restart_required"

	KeyWizardTitle    = "wizard_title"
	KeyWizardWelcome  = "wizard_welcome"
	KeyWizardIntro    = "wizard_intro"
	KeyAutoDetect     = "auto_detect"
	KeyLocate         = "locate"
	KeyNotInstalled   = "not_installed"
	KeyIncomplete     = "incomplete"
	KeyFinish         = "finish"
	KeyWizardDone     = "wizard_done"
	KeyBundledFound   = "bundled_found"
	KeyNotExecutable  = "not_executable"
	KeyNewRelease     = "new_release"
	KeyDevVersion     = "dev_version"
	KeyLatestVersion  = "latest_version"
	KeyCreateFileErr  = "create_file_error"
	KeyConfigError    = "config_error"
	KeyNothingChecked = "nothing_checked"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
		getenv:          os.Getenv,
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; "system" follows the environment locale
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem || lang == "" {
		lang = SystemLanguage(l.getenv)
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// SystemLanguage returns the available language closest to the POSIX locale
// in LC_ALL, LC_MESSAGES or LANG
func SystemLanguage(getenv func(string) string) string {
	var locale string
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(key); v != "" {
			locale = v
			break
		}
	}

	// it_IT.UTF-8@euro -> it-IT
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return LangEnglish
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return LangEnglish
	}
	matched, _, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return LangEnglish
	}
	base, _ := matched.Base()
	return base.String()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangSystem:  l.GetText(KeySystemLanguage),
		LangEnglish: "English",
		LangItalian: "Italiano",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle: "FFcuesplitter-GUI",
		KeyReady:    "Ready",
		KeyApply:    "Apply",
		KeyCancel:   "Cancel",
		KeySave:     "Save",
		KeyBrowse:   "Browse..",
		KeyYes:      "Yes",
		KeyNo:       "No",
		KeyClose:    "Close",

		KeyFile:           "File",
		KeyOpenCue:        "Open a CUE sheet...",
		KeyOpenOutputDir:  "Open output directory",
		KeyWorkNotes:      "Work Notes",
		KeyExit:           "Exit",
		KeyGoto:           "Goto",
		KeyConfigDir:      "Configuration Directory",
		KeyLogsDir:        "Logs Directory",
		KeyHelp:           "Help",
		KeyUserGuide:      "User Guide",
		KeyWiki:           "Wiki",
		KeyIssueTracker:   "Issue tracker",
		KeyFFmpegDocs:     "FFmpeg documentation",
		KeyCheckRelease:   "Check for newer version",
		KeyAbout:          "About FFcuesplitter-GUI",
		KeyAboutText:      "Audio tracks extractor from CUE sheet based images, powered by FFmpeg.",
		KeyVersion:        "Version",
		KeyToolTrackTag:   "Track Tag",
		KeyToolProperties: "Properties",
		KeyToolStart:      "Start",
		KeyToolAbort:      "Abort",
		KeyToolSettings:   "Settings",
		KeyToolLogs:       "Logs",

		KeyCueFile:     "CUE sheet",
		KeyImportCue:   "Import",
		KeyOutputDir:   "Destination",
		KeyFormat:      "Format",
		KeyQuality:     "Compression",
		KeyCodecCopy:   "Copy the source audio codec",
		KeyColTrack:    "Track",
		KeyColArtist:   "Artist",
		KeyColTitle:    "Title",
		KeyColDuration: "Time",
		KeyColAlbum:    "Album",

		KeyStatusProcessing:  "Processing Track",
		KeyStatusProgress:    "Status Progress",
		KeyStatusAborting:    "wait... I'm aborting",
		KeyStatusInterrupted: "...Interrupted",
		KeyStatusError:       "ERROR: See Log for Details",
		KeyStatusFinished:    "...Finished!",
		KeySuccess:           "Success!",
		KeySuccessBody:       "Get your files at the destination specified",
		KeyErrorTitle:        "ERROR!",
		KeyErrorBody:         "An error has occurred.",

		KeyConflictTitle: "Files already exist",
		KeyConflictBody:  "%d file(s) already exist in the destination folder:\n\n%s\n\nWhat do you want to do?",
		KeyOverwriteAll:  "Overwrite all",
		KeySkip:          "Skip",
		KeySkippedTracks: "%d existing file(s) were skipped",

		KeyConfirmTitle: "Please confirm",
		KeyKillConfirm:  "There are still processes running.. if you want to stop them, use the \"Abort\" button.\n\nDo you want to kill application?",
		KeyExitConfirm:  "Are you sure you want to exit?",

		KeyNoLogs:          "There are no logs to show.",
		KeyLogWindowTitle:  "Showing log messages",
		KeyLogFileList:     "Log file list",
		KeyLogMessages:     "Log messages",
		KeyRefresh:         "Refresh",
		KeyClearLog:        "Clear",
		KeySelectLog:       "Select a log file",
		KeyClearLogConfirm: "Are you sure you want to clear the selected log file?",
		KeyShowInFolder:    "Show in folder",

		KeyTrackTagTitle: "Track (%d) Audio Tag",
		KeyTagArtist:     "Artist",
		KeyTagAlbum:      "Album",
		KeyTagTitle:      "Track Title",
		KeyTagGenre:      "Genre",
		KeyTagDate:       "Date",
		KeyTagDiscID:     "Disc ID",
		KeyTagComment:    "Comment",
		KeyCDInfoTitle:   "Audio CD properties",

		KeySetupTitle:      "FFcuesplitter-GUI Setup",
		KeyTabMisc:         "Miscellanea",
		KeyClearLogsOnExit: "Delete the contents of the log files\nwhen exiting the application",
		KeyWarnExit:        "Warn on exit",
		KeyTabFile:         "File",
		KeyOutputPrompt:    "Where do you prefer to save your files?",
		KeyTabFFmpeg:       "FFmpeg",
		KeyExecPaths:       "Path to the executables",
		KeyCustomFFmpeg:    "Enable another location to run FFmpeg",
		KeyCustomFFprobe:   "Enable another location to run FFprobe",
		KeyTabAppearance:   "Appearance",
		KeyIconTheme:       "Icon themes",
		KeyToolbarPos:      "Place the toolbar",
		KeyToolbarTop:      "At the top of window (default)",
		KeyToolbarBottom:   "At the bottom of window",
		KeyToolbarRight:    "At the right of window",
		KeyToolbarLeft:     "At the left of window",
		KeyToolbarSize:     "Icon size:",
		KeyToolbarText:     "Shows the text in the toolbar buttons",
		KeyTabLogging:      "Logging levels",
		KeyLogLevelHint:    "The following settings affect output messages and\nthe log messages during processing.",
		KeyLanguage:        "Language",
		KeySystemLanguage:  "System language",
		KeyRestartRequired: "Changes will take effect once the program has been restarted",

		KeyWizardTitle:    "Cuesplitter-GUI Wizard",
		KeyWizardWelcome:  "Welcome to the Cuesplitter-GUI Wizard!",
		KeyWizardIntro:    "Cuesplitter-GUI is an application based on FFmpeg.\n\nIf FFmpeg is already installed on your system, click \"Auto-detection\".\nIf you want to use a version of FFmpeg located elsewhere, click \"Locate\".",
		KeyAutoDetect:     "Auto-detection",
		KeyLocate:         "Locate",
		KeyNotInstalled:   "'%s' is not installed on your computer. Install it or indicate another location using the 'Locate' button.",
		KeyIncomplete:     "Some text boxes are still incomplete",
		KeyFinish:         "Finish",
		KeyWizardDone:     "Wizard completed successfully!\nRemember that you can always change these settings later, through the Setup dialog.",
		KeyBundledFound:   "Cuesplitter-GUI already seems to include FFmpeg.\n\nDo you want to use that?",
		KeyNotExecutable:  "'%s' is not an executable file",
		KeyNewRelease:     "A new release is available - v.%s",
		KeyDevVersion:     "You are using a development version that has not yet been released!",
		KeyLatestVersion:  "Congratulation! You are already using the latest version.",
		KeyCreateFileErr:  "Unexpected error while creating file:\n\n%s",
		KeyConfigError:    "The configuration could not be loaded:\n\n%s",
		KeyNothingChecked: "Select at least one track to extract",
	}

	l.texts[LangItalian] = map[string]string{
		KeyAppTitle: "FFcuesplitter-GUI",
		KeyReady:    "Pronto",
		KeyApply:    "Applica",
		KeyCancel:   "Annulla",
		KeySave:     "Salva",
		KeyBrowse:   "Sfoglia..",
		KeyYes:      "Sì",
		KeyNo:       "No",
		KeyClose:    "Chiudi",

		KeyFile:           "File",
		KeyOpenCue:        "Apri un file CUE...",
		KeyOpenOutputDir:  "Apri la cartella di destinazione",
		KeyWorkNotes:      "Note di lavoro",
		KeyExit:           "Esci",
		KeyGoto:           "Vai",
		KeyConfigDir:      "Cartella di configurazione",
		KeyLogsDir:        "Cartella dei log",
		KeyHelp:           "Aiuto",
		KeyUserGuide:      "Guida utente",
		KeyWiki:           "Wiki",
		KeyIssueTracker:   "Segnala un problema",
		KeyFFmpegDocs:     "Documentazione FFmpeg",
		KeyCheckRelease:   "Controlla nuove versioni",
		KeyAbout:          "Informazioni su FFcuesplitter-GUI",
		KeyAboutText:      "Estrattore di tracce audio da immagini con foglio CUE, basato su FFmpeg.",
		KeyVersion:        "Versione",
		KeyToolTrackTag:   "Tag traccia",
		KeyToolProperties: "Proprietà",
		KeyToolStart:      "Avvia",
		KeyToolAbort:      "Interrompi",
		KeyToolSettings:   "Impostazioni",
		KeyToolLogs:       "Log",

		KeyCueFile:     "Foglio CUE",
		KeyImportCue:   "Importa",
		KeyOutputDir:   "Destinazione",
		KeyFormat:      "Formato",
		KeyQuality:     "Compressione",
		KeyCodecCopy:   "Copia il codec audio sorgente",
		KeyColTrack:    "Traccia",
		KeyColArtist:   "Artista",
		KeyColTitle:    "Titolo",
		KeyColDuration: "Durata",
		KeyColAlbum:    "Album",

		KeyStatusProcessing:  "Elaborazione traccia",
		KeyStatusProgress:    "Avanzamento",
		KeyStatusAborting:    "attendere... interruzione in corso",
		KeyStatusInterrupted: "...Interrotto",
		KeyStatusError:       "ERRORE: vedi il log per i dettagli",
		KeyStatusFinished:    "...Completato!",
		KeySuccess:           "Fatto!",
		KeySuccessBody:       "I file si trovano nella destinazione specificata",
		KeyErrorTitle:        "ERRORE!",
		KeyErrorBody:         "Si è verificato un errore.",

		KeyConflictTitle: "File già esistenti",
		KeyConflictBody:  "%d file esistono già nella cartella di destinazione:\n\n%s\n\nCosa vuoi fare?",
		KeyOverwriteAll:  "Sovrascrivi tutti",
		KeySkip:          "Salta",
		KeySkippedTracks: "%d file esistenti sono stati saltati",

		KeyConfirmTitle: "Conferma",
		KeyKillConfirm:  "Ci sono ancora processi in esecuzione.. per fermarli usa il pulsante \"Interrompi\".\n\nVuoi terminare l'applicazione?",
		KeyExitConfirm:  "Sei sicuro di voler uscire?",

		KeyNoLogs:          "Non ci sono log da mostrare.",
		KeyLogWindowTitle:  "Messaggi di log",
		KeyLogFileList:     "Elenco dei file di log",
		KeyLogMessages:     "Messaggi di log",
		KeyRefresh:         "Aggiorna",
		KeyClearLog:        "Svuota",
		KeySelectLog:       "Seleziona un file di log",
		KeyClearLogConfirm: "Sei sicuro di voler svuotare il file di log selezionato?",
		KeyShowInFolder:    "Mostra nella cartella",

		KeyTrackTagTitle: "Tag audio traccia (%d)",
		KeyTagArtist:     "Artista",
		KeyTagAlbum:      "Album",
		KeyTagTitle:      "Titolo traccia",
		KeyTagGenre:      "Genere",
		KeyTagDate:       "Data",
		KeyTagDiscID:     "ID disco",
		KeyTagComment:    "Commento",
		KeyCDInfoTitle:   "Proprietà del CD audio",

		KeySetupTitle:      "Impostazioni di FFcuesplitter-GUI",
		KeyTabMisc:         "Varie",
		KeyClearLogsOnExit: "Cancella il contenuto dei file di log\nall'uscita dall'applicazione",
		KeyWarnExit:        "Chiedi conferma all'uscita",
		KeyTabFile:         "File",
		KeyOutputPrompt:    "Dove preferisci salvare i tuoi file?",
		KeyTabFFmpeg:       "FFmpeg",
		KeyExecPaths:       "Percorso degli eseguibili",
		KeyCustomFFmpeg:    "Usa un'altra posizione per FFmpeg",
		KeyCustomFFprobe:   "Usa un'altra posizione per FFprobe",
		KeyTabAppearance:   "Aspetto",
		KeyIconTheme:       "Temi delle icone",
		KeyToolbarPos:      "Posizione della barra strumenti",
		KeyToolbarTop:      "In alto (predefinito)",
		KeyToolbarBottom:   "In basso",
		KeyToolbarRight:    "A destra",
		KeyToolbarLeft:     "A sinistra",
		KeyToolbarSize:     "Dimensione icone:",
		KeyToolbarText:     "Mostra il testo nei pulsanti della barra",
		KeyTabLogging:      "Livelli di log",
		KeyLogLevelHint:    "Le seguenti impostazioni riguardano i messaggi di output e\ni messaggi di log durante l'elaborazione.",
		KeyLanguage:        "Lingua",
		KeySystemLanguage:  "Lingua di sistema",
		KeyRestartRequired: "Le modifiche avranno effetto al riavvio del programma",

		KeyWizardTitle:    "Configurazione guidata di Cuesplitter-GUI",
		KeyWizardWelcome:  "Benvenuto nella configurazione guidata di Cuesplitter-GUI!",
		KeyWizardIntro:    "Cuesplitter-GUI è un'applicazione basata su FFmpeg.\n\nSe FFmpeg è già installato nel sistema, fai clic su \"Rilevamento automatico\".\nSe vuoi usare FFmpeg da un'altra posizione, fai clic su \"Individua\".",
		KeyAutoDetect:     "Rilevamento automatico",
		KeyLocate:         "Individua",
		KeyNotInstalled:   "'%s' non è installato nel computer. Installalo o indica un'altra posizione con il pulsante 'Individua'.",
		KeyIncomplete:     "Alcuni campi di testo sono ancora incompleti",
		KeyFinish:         "Fine",
		KeyWizardDone:     "Configurazione completata!\nPuoi sempre modificare queste impostazioni dalla finestra Impostazioni.",
		KeyBundledFound:   "Cuesplitter-GUI sembra includere già FFmpeg.\n\nVuoi usarlo?",
		KeyNotExecutable:  "'%s' non è un file eseguibile",
		KeyNewRelease:     "È disponibile una nuova versione - v.%s",
		KeyDevVersion:     "Stai usando una versione di sviluppo non ancora rilasciata!",
		KeyLatestVersion:  "Complimenti! Stai già usando l'ultima versione.",
		KeyCreateFileErr:  "Errore imprevisto durante la creazione del file:\n\n%s",
		KeyConfigError:    "Impossibile caricare la configurazione:\n\n%s",
		KeyNothingChecked: "Seleziona almeno una traccia da estrarre",
	}
}
