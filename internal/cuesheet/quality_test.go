package cuesheet

import "testing"

func TestQualityItems_Defaults(t *testing.T) {
	tests := []struct {
		format   string
		count    int
		fallback string
	}{
		{FormatWAV, 1, "Auto"},
		{FormatFLAC, 10, "Standard quality"},
		{FormatMP3, 6, "VBR 192 kbit/s"},
		{FormatOGG, 11, "VBR 175 kbit/s"},
	}

	for _, test := range tests {
		items, def := QualityItems(test.format)
		if len(items) != test.count {
			t.Errorf("%s: expected %d items, got %d", test.format, test.count, len(items))
		}
		if def != test.fallback {
			t.Errorf("%s: expected default %q, got %q", test.format, test.fallback, def)
		}
		if items[0].Label != QualityAuto {
			t.Errorf("%s: first preset should be Auto", test.format)
		}
		found := false
		for _, label := range QualityLabels(test.format) {
			if label == def {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: default %q is not a listed preset", test.format, def)
		}
	}
}

func TestQualityItems_ReturnsCopy(t *testing.T) {
	items, _ := QualityItems(FormatFLAC)
	items[0].Label = "changed"

	again, _ := QualityItems(FormatFLAC)
	if again[0].Label != QualityAuto {
		t.Error("QualityItems should not expose the shared table")
	}
}

func TestQualityParams(t *testing.T) {
	params, err := QualityParams(FormatOGG, "very good quality")
	if err != nil {
		t.Fatalf("QualityParams failed: %v", err)
	}
	if len(params) != 2 || params[0] != "-aq" || params[1] != "10" {
		t.Errorf("Unexpected params %v", params)
	}

	auto, err := QualityParams(FormatWAV, QualityAuto)
	if err != nil || len(auto) != 0 {
		t.Errorf("Auto should produce no params, got %v, %v", auto, err)
	}
}
