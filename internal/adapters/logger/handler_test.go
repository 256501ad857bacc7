package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ship/internal/adapters/logger"
)

func TestConsoleHandler_Attributes(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		log  func(*slog.Logger)
		want string
	}{
		{
			name: "record attributes",
			log:  func(l *slog.Logger) { l.Info("packaged", "entries", 3) },
			want: "packaged entries=3\n",
		},
		{
			name: "handler attributes come first",
			log:  func(l *slog.Logger) { l.With("target", "windows64").Warn("slow", "seconds", 2) },
			want: "! slow target=windows64 seconds=2\n",
		},
		{
			name: "groups nest",
			log:  func(l *slog.Logger) { l.WithGroup("build").WithGroup("archive").Info("ok", "ext", ".archive") },
			want: "ok build.archive.ext=.archive\n",
		},
		{
			name: "attributes keep the group they were added under",
			log:  func(l *slog.Logger) { l.With("run", "r1").WithGroup("stage").Info("ok", "name", "package") },
			want: "ok run=r1 stage.name=package\n",
		},
		{
			name: "inline group",
			log:  func(l *slog.Logger) { l.Error("failed", slog.Group("engine", "code", 1)) },
			want: "✗ failed engine.code=1\n",
		},
		{
			name: "empty attributes are dropped",
			log:  func(l *slog.Logger) { l.Info("ok", slog.Attr{}) },
			want: "ok\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(slog.New(logger.NewConsoleHandler(&buf, nil)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsoleHandler_Level(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	l := slog.New(logger.NewConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	l.Info("hidden")
	l.Warn("shown")

	assert.Equal(t, "! shown\n", buf.String())
}
