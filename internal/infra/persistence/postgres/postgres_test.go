package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	base := sql.DBStats{WaitCount: 10, WaitDuration: time.Second, MaxOpenConnections: 8}

	tests := []struct {
		name       string
		cur        sql.DBStats
		wantWaited bool
		wantLevel  slog.Level
	}{
		{name: "no new waits", cur: base},
		{
			name:       "short waits",
			cur:        sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond},
			wantWaited: true,
			wantLevel:  slog.LevelDebug,
		},
		{
			name:       "long waits",
			cur:        sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second},
			wantWaited: true,
			wantLevel:  slog.LevelWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, attrs, waited := poolWaitReport(base, tt.cur)

			assert.Equal(t, tt.wantWaited, waited)
			if !tt.wantWaited {
				assert.Empty(t, attrs)

				return
			}
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, "waits", attrs[0].Key)
		})
	}
}
