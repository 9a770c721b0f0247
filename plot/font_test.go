package plot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestLoadFonts_Embedded(t *testing.T) {
	ctx := waitCtx(t)
	fonts := LoadFonts(ctx, "")
	t.Cleanup(func() { _ = fonts.Close() })

	if err := fonts.Wait(ctx); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if !fonts.Ready() {
		t.Fatal("Ready() = false after successful load")
	}
	a := fonts.Face(12)
	if a == nil {
		t.Fatal("Face(12) = nil")
	}
	if b := fonts.Face(12); b != a {
		t.Error("Face(12) not cached")
	}
	if _, err := fonts.Source(); err != nil {
		t.Errorf("Source() error = %v", err)
	}
}

func TestLoadFonts_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fonts := LoadFonts(ctx, "")
	<-fonts.Done()
	if err := fonts.Wait(waitCtx(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() = %v, want context.Canceled", err)
	}
	if fonts.Ready() {
		t.Error("Ready() = true after cancelled load")
	}
	if fonts.Face(12) != nil {
		t.Error("Face() returned a face after cancelled load")
	}
}

func TestLoadFonts_MissingFile(t *testing.T) {
	ctx := waitCtx(t)
	fonts := LoadFonts(ctx, filepath.Join(t.TempDir(), "missing.ttf"))
	if err := fonts.Wait(ctx); err == nil {
		t.Fatal("Wait() = nil, want error for missing font")
	}
	if _, err := fonts.Source(); err == nil || errors.Is(err, ErrFontsNotReady) {
		t.Errorf("Source() error = %v, want load error", err)
	}
}

func TestFonts_Nil(t *testing.T) {
	var fonts *Fonts
	if fonts.Ready() || fonts.Face(10) != nil {
		t.Error("nil Fonts should never be ready")
	}
	if _, err := fonts.Source(); !errors.Is(err, ErrFontsNotReady) {
		t.Errorf("Source() = %v, want ErrFontsNotReady", err)
	}
	if err := fonts.Wait(waitCtx(t)); !errors.Is(err, ErrFontsNotReady) {
		t.Errorf("Wait() = %v, want ErrFontsNotReady", err)
	}
	if err := fonts.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}
