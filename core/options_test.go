package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Options) {}},
		{name: "library engine", mutate: func(o *Options) { o.Engine = EngineLibrary }},
		{name: "pdf format", mutate: func(o *Options) { o.Format = FormatPDF }},
		{name: "no badge", mutate: func(o *Options) { o.Badge = "" }},
		{name: "unknown engine", mutate: func(o *Options) { o.Engine = "pandoc" }, wantErr: true},
		{name: "unknown format", mutate: func(o *Options) { o.Format = "html" }, wantErr: true},
		{name: "empty image reference", mutate: func(o *Options) { o.ImageReference = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
