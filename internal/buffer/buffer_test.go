package buffer

import (
	"bytes"
	"os"
	"testing"
)

func TestFromBytes(t *testing.T) {
	src := []byte{0x41, 0x42, 0x43}
	b := FromBytes(src)

	if b.Size() != 3 {
		t.Errorf("expected size 3, got %d", b.Size())
	}
	if b.IsModified() {
		t.Error("fresh buffer should not be modified")
	}

	// The buffer owns its copy.
	src[0] = 0xFF
	if val, ok := b.GetByte(0); !ok || val != 0x41 {
		t.Errorf("expected 0x41 at offset 0, got %02X", val)
	}
}

func TestGetByte(t *testing.T) {
	b := FromBytes([]byte{0x01, 0x02})

	if val, ok := b.GetByte(1); !ok || val != 0x02 {
		t.Errorf("expected 0x02 at offset 1, got %02X", val)
	}
	if _, ok := b.GetByte(-1); ok {
		t.Error("negative offset should not resolve")
	}
	if _, ok := b.GetByte(2); ok {
		t.Error("offset past end should not resolve")
	}
}

func TestReplace(t *testing.T) {
	b := FromBytes([]byte{0x41, 0x42, 0x43})
	b.Replace(1, 0xFF)

	if val, ok := b.GetByte(1); !ok || val != 0xFF {
		t.Errorf("expected 0xFF at offset 1, got %02X", val)
	}
	if !b.IsModified() {
		t.Error("expected IsModified after replace")
	}

	// Out of range is a no-op.
	b.Replace(99, 0xAA)
	if b.Size() != 3 {
		t.Errorf("expected size 3, got %d", b.Size())
	}
}

func TestReplaceSameByteKeepsClean(t *testing.T) {
	b := FromBytes([]byte{0x41})
	b.Replace(0, 0x41)
	if b.IsModified() {
		t.Error("replacing a byte with itself should not dirty the buffer")
	}
}

func TestOpenAndSave(t *testing.T) {
	f, err := os.CreateTemp("", "nibbled_test_*.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	testData := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	f.Write(testData)
	f.Close()

	b, err := Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}

	if b.Size() != 5 {
		t.Errorf("expected size 5, got %d", b.Size())
	}

	b.Replace(2, 0xFF)
	if err := b.Save(); err != nil {
		t.Fatal(err)
	}
	if b.IsModified() {
		t.Error("save should clear the modified flag")
	}

	got, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 0x02, 0xFF, 0x04, 0x05}
	if !bytes.Equal(got, want) {
		t.Errorf("expected %X on disk, got %X", want, got)
	}
}

func TestSaveDoesNotTruncate(t *testing.T) {
	f, err := os.CreateTemp("", "nibbled_test_*.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	f.Write([]byte{0x10, 0x20, 0x30})
	f.Close()

	b, err := Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}

	// Simulate the file growing underneath the editor.
	if err := os.WriteFile(f.Name(), []byte{0x10, 0x20, 0x30, 0x40, 0x50}, 0644); err != nil {
		t.Fatal(err)
	}

	b.Replace(0, 0xAA)
	if err := b.Save(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xAA, 0x20, 0x30, 0x40, 0x50}
	if !bytes.Equal(got, want) {
		t.Errorf("expected %X on disk, got %X", want, got)
	}
}

func TestRoundTripUnmodified(t *testing.T) {
	f, err := os.CreateTemp("", "nibbled_test_*.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	testData := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	f.Write(testData)
	f.Close()

	b, err := Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Save(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, testData) {
		t.Errorf("round trip changed the bytes: %X", got)
	}
}

func TestHasChangedOnDisk(t *testing.T) {
	f, err := os.CreateTemp("", "nibbled_test_*.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	f.Write([]byte{0x01, 0x02})
	f.Close()

	b, err := Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}

	changed, err := b.HasChangedOnDisk()
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("file should not be reported as changed")
	}

	if err := os.WriteFile(f.Name(), []byte{0x03, 0x04}, 0644); err != nil {
		t.Fatal(err)
	}

	changed, err = b.HasChangedOnDisk()
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("file should be reported as changed")
	}
}
