package fs

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Checksum computes a hash of data using xxhash.
func Checksum(data []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(data))
}

// ChecksumFile computes the checksum of the file at path.
func ChecksumFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Checksum(data), nil
}
