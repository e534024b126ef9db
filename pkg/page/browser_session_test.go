package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrowserOptions_WithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		opts     BrowserOptions
		expected BrowserOptions
	}{
		{
			name:     "zero values use defaults",
			opts:     BrowserOptions{},
			expected: BrowserOptions{Timeout: DefaultBrowserTimeout, TableWait: DefaultTableWait},
		},
		{
			name:     "table wait is far shorter than the navigation timeout",
			opts:     BrowserOptions{Timeout: 30000},
			expected: BrowserOptions{Timeout: 30000, TableWait: 5000},
		},
		{
			name:     "table wait never exceeds the navigation timeout",
			opts:     BrowserOptions{Timeout: 2000, TableWait: 10000},
			expected: BrowserOptions{Timeout: 2000, TableWait: 2000},
		},
		{
			name:     "explicit values are kept",
			opts:     BrowserOptions{Headless: true, Timeout: 10000, TableWait: 500},
			expected: BrowserOptions{Headless: true, Timeout: 10000, TableWait: 500},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.withDefaults())
		})
	}
}
