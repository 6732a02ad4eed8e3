package flacmeta_test

import (
	"context"
	"errors"
	"testing"

	"github.com/simonhull/flacmeta"
)

func TestParseMany_Order(t *testing.T) {
	paths := []string{
		writeTempFile(t, createMinimalFLAC("TITLE=one")),
		writeTempFile(t, createMinimalFLAC("TITLE=two")),
		writeTempFile(t, createMinimalFLAC("TITLE=three")),
	}

	results := flacmeta.ParseMany(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}

	want := []string{"one", "two", "three"}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("result %d: path %q, want %q", i, res.Path, paths[i])
		}
		if res.Err != nil {
			t.Fatalf("result %d: unexpected error %v", i, res.Err)
		}
		vc, ok := res.Snapshot.VorbisComment()
		if !ok {
			t.Fatalf("result %d: missing VORBIS_COMMENT", i)
		}
		if got := vc.Get("TITLE"); len(got) != 1 || got[0] != want[i] {
			t.Errorf("result %d: TITLE = %q, want %q", i, got, want[i])
		}
	}
}

// TestParseMany_PartialFailure verifies one bad file does not sink the batch
func TestParseMany_PartialFailure(t *testing.T) {
	validPath := writeTempFile(t, createMinimalFLAC())
	invalidPath := writeTempFile(t, []byte("OggS"))

	paths := []string{
		validPath,
		"/nonexistent/file.flac",
		invalidPath,
		validPath,
	}

	results := flacmeta.ParseMany(context.Background(), paths)

	if results[0].Err != nil || results[3].Err != nil {
		t.Errorf("valid files should parse: %v, %v", results[0].Err, results[3].Err)
	}
	if results[1].Err == nil {
		t.Error("expected error for nonexistent file")
	}

	var sigErr *flacmeta.InvalidSignatureError
	if !errors.As(results[2].Err, &sigErr) {
		t.Errorf("expected InvalidSignatureError, got %T: %v", results[2].Err, results[2].Err)
	}
}

// TestParseMany_Cancellation verifies a cancelled context is reported per file
func TestParseMany_Cancellation(t *testing.T) {
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = writeTempFile(t, createMinimalFLAC())
	}

	// Create a context that's already cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := flacmeta.ParseMany(ctx, paths)

	for i, res := range results {
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("result %d: expected context.Canceled, got %v", i, res.Err)
		}
		if res.Snapshot != nil {
			t.Errorf("result %d: expected no snapshot", i)
		}
	}
}

func TestParseMany_Empty(t *testing.T) {
	if results := flacmeta.ParseMany(context.Background(), nil); results != nil {
		t.Errorf("expected nil results, got %v", results)
	}
}

func TestParseContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := flacmeta.ParseContext(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
