package format

import "testing"

func TestGetFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Format
	}{
		{
			name:     "json",
			filename: "testdata/conf.json",
			want:     JSON,
		},
		{
			name:     "yaml",
			filename: "testdata/conf.yaml",
			want:     YAML,
		},
		{
			name:     "yml",
			filename: "conf.yml",
			want:     YAML,
		},
		{
			name:     "unknown",
			filename: "conf.xlsx",
			want:     UnknownFormat,
		},
		{
			name:     "no-ext",
			filename: "conf",
			want:     UnknownFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetFormat(tt.filename); got != tt.want {
				t.Errorf("GetFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat2Ext(t *testing.T) {
	if got := Format2Ext(JSON); got != JSONExt {
		t.Errorf("Format2Ext() = %v, want %v", got, JSONExt)
	}
	if got := Format2Ext(YAML); got != YAMLExt {
		t.Errorf("Format2Ext() = %v, want %v", got, YAMLExt)
	}
	if got := Format2Ext(UnknownFormat); got != UnknownExt {
		t.Errorf("Format2Ext() = %v, want %v", got, UnknownExt)
	}
}

func TestIsInputFormat(t *testing.T) {
	if !IsInputFormat(JSON) || !IsInputFormat(YAML) {
		t.Error("JSON and YAML should be input formats")
	}
	if IsInputFormat(UnknownFormat) {
		t.Error("UnknownFormat should not be an input format")
	}
}
