package folderlist

import (
	"errors"
	"testing"

	"github.com/AntonioJCosta/folderator/internal/core/domain/folder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFolderLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		want       folder.Entry
		wantReason string
	}{
		{
			name: "bare relative path",
			line: "src/app",
			want: folder.Entry{RawPath: "src/app"},
		},
		{
			name: "named entry",
			line: "api: ./services/api",
			want: folder.Entry{RawPath: "./services/api", CustomName: "api"},
		},
		{
			name: "name and path are trimmed",
			line: "web  :   /srv/www",
			want: folder.Entry{RawPath: "/srv/www", CustomName: "web"},
		},
		{
			name: "only the first colon splits",
			line: "db: /mnt/c:/data",
			want: folder.Entry{RawPath: "/mnt/c:/data", CustomName: "db"},
		},
		{
			name: "leading colon is part of the path",
			line: ":weird/path",
			want: folder.Entry{RawPath: ":weird/path"},
		},
		{
			name:       "whitespace before colon is an empty name",
			line:       "   : /x",
			wantReason: reasonEmptyName,
		},
		{
			name:       "empty path after colon",
			line:       "api:",
			wantReason: reasonEmptyPath,
		},
		{
			name:       "blank path after colon",
			line:       "api:    ",
			wantReason: reasonEmptyPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFolderLine(tt.line)
			if tt.wantReason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLine))
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.line, parseErr.Line)
			assert.Equal(t, tt.wantReason, parseErr.Reason)
			assert.Equal(t, folder.Entry{}, got)
		})
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Line: ": /x", Reason: reasonEmptyName}
	assert.Equal(t, `Invalid named line format: ": /x" - name is empty before ":"`, err.Error())
	assert.False(t, errors.Is(err, ErrEmptyList))
}
