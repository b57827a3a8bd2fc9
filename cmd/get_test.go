package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/miniobject/s3ctl/pkg/s3client"
)

func TestParseByteRange(t *testing.T) {
	rng, err := parseByteRange("")
	assert.Nil(t, err)
	assert.Nil(t, rng)

	rng, err = parseByteRange("0-4")
	assert.Nil(t, err)
	assert.Equal(t, &s3client.ByteRange{Start: 0, End: 4}, rng)

	for _, bad := range []string{"5", "a-b", "-", "1-2-3"} {
		if _, err := parseByteRange(bad); err == nil {
			t.Errorf("Expected an error for range spec %q", bad)
		}
	}
}
