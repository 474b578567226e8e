package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-afp/internal/finderinfo"
	"github.com/deploymenttheory/go-afp/internal/resourcefork"
	"github.com/deploymenttheory/go-afp/internal/sidecar"
	"github.com/deploymenttheory/go-afp/internal/types"
)

// probeFile is a scratch file created on the volume under test
type probeFile struct {
	Path string
}

func createProbe(dir string) (*probeFile, error) {
	path := filepath.Join(dir, ".afp-probe-"+uuid.NewString())
	if err := os.WriteFile(path, []byte("data fork"), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create probe file: %w", err)
	}
	fmt.Printf("✓ Created probe file: %s\n", path)
	return &probeFile{Path: path}, nil
}

func (p *probeFile) remove(platform sidecar.Platform) {
	for _, key := range []sidecar.Key{platform.FinderInfo, platform.ResourceFork} {
		if key.Kind == types.SidecarStream {
			_ = os.Remove(sidecar.StreamPath(p.Path, key))
		}
	}
	if err := os.Remove(p.Path); err != nil {
		fmt.Printf("WARNING: Failed to remove probe file: %v\n", err)
	}
}

// testFinderInfo writes a ProDOS type and reads it back through a fresh store
func testFinderInfo(platform sidecar.Platform, p *probeFile) error {
	fmt.Printf("\n=== Finder info (%s, %s) ===\n", platform.FinderInfo.Kind, platform.FinderInfoFormat)

	store := finderinfo.NewStore(finderinfo.WithPlatform(platform))
	if err := store.Open(p.Path, types.WriteOnly); err != nil {
		return fmt.Errorf("open for write: %w", err)
	}
	store.SetProDOSFileTypeAux(0xFF, 0x2000)
	if err := store.Write(); err != nil {
		store.Close()
		return fmt.Errorf("write: %w", err)
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	fmt.Printf("✓ Wrote ProDOS $FF/$2000\n")

	check := finderinfo.NewStore(finderinfo.WithPlatform(platform))
	if err := check.Read(p.Path); err != nil {
		return fmt.Errorf("read back: %w", err)
	}
	if check.ProDOSFileType() != 0xFF || check.ProDOSAuxType() != 0x2000 {
		return fmt.Errorf("read back $%02X/$%04X, want $FF/$2000", check.ProDOSFileType(), check.ProDOSAuxType())
	}
	fmt.Printf("✓ Read back ProDOS $%02X/$%04X\n", check.ProDOSFileType(), check.ProDOSAuxType())
	return nil
}

// testResourceFork round-trips a fork through the selected backend
func testResourceFork(platform sidecar.Platform, backend types.BackendKind, p *probeFile) error {
	opts := []resourcefork.Option{resourcefork.WithPlatform(platform), resourcefork.WithBackend(backend)}
	payload := bytes.Repeat([]byte("rsrc"), 1024)

	stream, err := resourcefork.Open(p.Path, types.WriteOnly, opts...)
	if err != nil {
		return fmt.Errorf("open for write: %w", err)
	}
	fmt.Printf("\n=== Resource fork (%s backend) ===\n", stream.Kind())
	stream.Close()

	if err := resourcefork.WriteAll(p.Path, payload, opts...); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	fmt.Printf("✓ Wrote %d bytes\n", len(payload))

	got, err := resourcefork.ReadAll(p.Path, opts...)
	if err != nil {
		return fmt.Errorf("read back: %w", err)
	}
	if !bytes.Equal(got, payload) {
		return fmt.Errorf("read back %d bytes that differ from what was written", len(got))
	}
	fmt.Printf("✓ Read back %d bytes\n", len(got))

	if err := resourcefork.WriteAll(p.Path, nil, opts...); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	size, err := resourcefork.Size(p.Path, opts...)
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}
	if size != 0 {
		return fmt.Errorf("size after truncate is %d", size)
	}
	fmt.Printf("✓ Truncated to zero\n")
	return nil
}

func main() {
	fmt.Println("╔════════════════════════════════════════════════════════╗")
	fmt.Println("║        Finder Info / Resource Fork Volume Probe        ║")
	fmt.Println("╚════════════════════════════════════════════════════════╝")
	fmt.Println()

	// Get the directory to probe from arguments or use the working directory
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		fmt.Printf("ERROR: not a directory: %s\n", dir)
		fmt.Printf("\nUsage: go run scripts/probe_volume.go [path/to/mounted/volume]\n")
		os.Exit(1)
	}

	platform := sidecar.Host()
	fmt.Printf("Host conventions: %s\n", platform.GOOS)
	fmt.Printf("Volume: %s\n", dir)

	p, err := createProbe(dir)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
	defer p.remove(platform)

	failed := false
	if err := testFinderInfo(platform, p); err != nil {
		fmt.Printf("✗ Finder info: %v\n", err)
		failed = true
	}

	backends := []types.BackendKind{types.BackendAuto}
	if platform.ResourceFork.Kind == types.SidecarStream && platform.ResourceForkAttr != "" {
		backends = append(backends, types.BackendBlob)
	}
	for _, backend := range backends {
		if err := testResourceFork(platform, backend, p); err != nil {
			fmt.Printf("✗ Resource fork: %v\n", err)
			failed = true
		}
	}

	fmt.Println()
	if failed {
		fmt.Println("Some probes failed; this volume cannot hold all legacy metadata.")
		p.remove(platform)
		os.Exit(1)
	}
	fmt.Println("╔════════════════════════════════════════════════════════╗")
	fmt.Println("║                  All Probes Passed!                   ║")
	fmt.Println("╚════════════════════════════════════════════════════════╝")
}
