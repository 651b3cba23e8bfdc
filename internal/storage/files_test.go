package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Harshanand45/WorkNest/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(config.StorageConfig{UploadDir: t.TempDir()}, zap.NewNop().Sugar())
	require.NoError(t, err)
	return s
}

func TestSaveReturnsPublicURL(t *testing.T) {
	s := newTestStore(t)

	url, err := s.Save("report.pdf", strings.NewReader("content"))
	require.NoError(t, err)
	require.Equal(t, "/uploads/report.pdf", url)

	data, err := os.ReadFile(filepath.Join(s.Dir(), "report.pdf"))
	require.NoError(t, err)
	require.Equal(t, "content", string(data))
}

func TestSaveStripsPathComponents(t *testing.T) {
	s := newTestStore(t)

	url, err := s.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	require.Equal(t, "/uploads/passwd", url)
}

func TestSaveBase64Image(t *testing.T) {
	s := newTestStore(t)

	payload := base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4e, 0x47})
	path, err := s.SaveBase64Image("data:image/png;base64," + payload)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, ".png"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, data)
}

func TestSaveBase64ImageRejectsGarbage(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SaveBase64Image("no-comma-here")
	require.Error(t, err)

	_, err = s.SaveBase64Image("data:image/png;base64,!!!not-base64!!!")
	require.Error(t, err)
}
