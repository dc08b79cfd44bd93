package util

import (
	"crypto/md5" //nolint:gosec // upload integrity only
	"fmt"
)

// ContentMD5 returns the MD5 digest object stores use to verify an upload.
func ContentMD5(data []byte) []byte {
	sum := md5.Sum(data) //nolint:gosec

	return sum[:]
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
