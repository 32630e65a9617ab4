package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lakesidedc/club-server/internal/domain/common/errorz"
	"github.com/stretchr/testify/require"
)

func writeSlide(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
	return path
}

func TestSlideServiceListsSortedImages(t *testing.T) {
	dir := t.TempDir()
	writeSlide(t, dir, "b.png")
	writeSlide(t, dir, "a.jpg")
	writeSlide(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "thumbs"), 0o755))

	svc := NewSlideService(testLogger(), dir)
	defer svc.Close()

	require.Equal(t, 2, svc.Count())
	require.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
	}, svc.List())
}

func TestSlideServiceAt(t *testing.T) {
	dir := t.TempDir()
	writeSlide(t, dir, "only.webp")

	svc := NewSlideService(testLogger(), dir)
	defer svc.Close()

	slide, err := svc.At(0)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "only.webp"), slide)

	_, err = svc.At(1)
	require.ErrorIs(t, err, errorz.SlideOutOfRange)
	_, err = svc.At(-1)
	require.ErrorIs(t, err, errorz.SlideOutOfRange)
}

func TestSlideServiceEmptyDirectory(t *testing.T) {
	svc := NewSlideService(testLogger(), t.TempDir())
	defer svc.Close()

	require.Equal(t, 0, svc.Count())
	_, err := svc.At(0)
	require.ErrorIs(t, err, errorz.NoSlides)
	_, err = svc.Random()
	require.ErrorIs(t, err, errorz.NoSlides)
}

func TestSlideServiceRandomReturnsCachedSlide(t *testing.T) {
	dir := t.TempDir()
	known := map[string]bool{
		writeSlide(t, dir, "one.jpg"): true,
		writeSlide(t, dir, "two.gif"): true,
	}

	svc := NewSlideService(testLogger(), dir)
	defer svc.Close()

	for i := 0; i < 10; i++ {
		slide, err := svc.Random()
		require.NoError(t, err)
		require.True(t, known[slide], slide)
	}
}

func TestSlideServicePicksUpDirectoryChanges(t *testing.T) {
	dir := t.TempDir()
	writeSlide(t, dir, "first.png")

	svc := NewSlideService(testLogger(), dir)
	defer svc.Close()
	require.Equal(t, 1, svc.Count())

	writeSlide(t, dir, "second.png")
	require.Eventually(t, func() bool {
		return svc.Count() == 2
	}, 5*time.Second, 50*time.Millisecond)

	require.NoError(t, os.Remove(filepath.Join(dir, "first.png")))
	require.Eventually(t, func() bool {
		return svc.Count() == 1
	}, 5*time.Second, 50*time.Millisecond)
}

func TestSlideServiceSurvivesMissingDirectory(t *testing.T) {
	svc := NewSlideService(testLogger(), filepath.Join(t.TempDir(), "missing"))
	defer svc.Close()

	require.Equal(t, 0, svc.Count())
	_, err := svc.Random()
	require.ErrorIs(t, err, errorz.NoSlides)
}
