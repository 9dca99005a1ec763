package helper

import "testing"

type phoneItem struct {
	Phone string `json:"phone"`
}

func TestDecodeJSONSliceAbsent(t *testing.T) {
	if got := DecodeJSONSlice[phoneItem](nil); got != nil {
		t.Fatalf("absent field should decode to nil, got %v", got)
	}
}

func TestDecodeJSONSliceValues(t *testing.T) {
	got := DecodeJSONSlice[phoneItem]([]string{`[{"phone":"01-4411188"},{"phone":"01-4411189"}]`})
	if got == nil || len(*got) != 2 || (*got)[0].Phone != "01-4411188" {
		t.Fatalf("got %v", got)
	}
}

func TestDecodeJSONSlicePresentButEmptyClears(t *testing.T) {
	for _, raw := range []string{"[]", "", "not-json", "null"} {
		got := DecodeJSONSlice[phoneItem]([]string{raw})
		if got == nil {
			t.Errorf("%q: want non-nil empty slice, got nil", raw)
			continue
		}
		if len(*got) != 0 {
			t.Errorf("%q: want empty, got %v", raw, *got)
		}
	}
}
