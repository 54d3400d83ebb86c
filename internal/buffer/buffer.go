package buffer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Buffer holds the bytes of one file. The editor only overwrites bytes in
// place, so the length is fixed for the lifetime of the buffer.
type Buffer struct {
	filename     string
	data         []byte
	originalHash string
	modified     bool
}

func Open(filename string) (*Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256(data)

	return &Buffer{
		filename:     filename,
		data:         data,
		originalHash: hex.EncodeToString(hash[:]),
		modified:     false,
	}, nil
}

// FromBytes builds an unnamed in-memory buffer. Saving requires a filename.
func FromBytes(data []byte) *Buffer {
	d := make([]byte, len(data))
	copy(d, data)
	hash := sha256.Sum256(d)
	return &Buffer{
		data:         d,
		originalHash: hex.EncodeToString(hash[:]),
	}
}

func (b *Buffer) Filename() string {
	return b.filename
}

func (b *Buffer) IsModified() bool {
	return b.modified
}

func (b *Buffer) Size() int64 {
	return int64(len(b.data))
}

func (b *Buffer) Data() []byte {
	return b.data
}

func (b *Buffer) GetByte(offset int64) (byte, bool) {
	if offset < 0 || offset >= int64(len(b.data)) {
		return 0, false
	}
	return b.data[offset], true
}

// Replace overwrites one byte. Out-of-range offsets are ignored.
func (b *Buffer) Replace(offset int64, newByte byte) {
	if offset < 0 || offset >= int64(len(b.data)) {
		return
	}
	if b.data[offset] == newByte {
		return
	}
	b.data[offset] = newByte
	b.modified = true
}

func (b *Buffer) HasChangedOnDisk() (bool, error) {
	if b.filename == "" {
		return false, nil
	}

	f, err := os.Open(b.filename)
	if err != nil {
		return false, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return false, err
	}

	hash := sha256.Sum256(data)
	currentHash := hex.EncodeToString(hash[:])

	return currentHash != b.originalHash, nil
}

// Save writes the buffer back at offset 0 without truncating the file.
// It is an overwrite of exactly len(data) bytes, never a truncate or an
// append.
func (b *Buffer) Save() error {
	if b.filename == "" {
		return fmt.Errorf("no filename set")
	}

	f, err := os.OpenFile(b.filename, os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := f.WriteAt(b.data, 0)
	if err != nil {
		return err
	}
	if n != len(b.data) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(b.data))
	}

	hash := sha256.Sum256(b.data)
	b.originalHash = hex.EncodeToString(hash[:])
	b.modified = false

	return nil
}
