// Optional decoder for the gateway's ListObjectsV2 responses.
//
// pkg/s3client deliberately hands back the listing payload as raw bytes;
// this package is the separate collaborator that turns it into structs for
// callers who want them. The field set mirrors the XML the gateway emits.
package listing

import (
	"encoding/xml"

	"github.com/pkg/errors"
)

// ListBucketResult is one page of a ListObjectsV2 response.
type ListBucketResult struct {
	XMLName               xml.Name       `xml:"ListBucketResult"`
	Name                  string         `xml:"Name"`
	Prefix                string         `xml:"Prefix"`
	Delimiter             string         `xml:"Delimiter"`
	MaxKeys               int            `xml:"MaxKeys"`
	KeyCount              int            `xml:"KeyCount"`
	IsTruncated           bool           `xml:"IsTruncated"`
	Contents              []Object       `xml:"Contents"`
	CommonPrefixes        []CommonPrefix `xml:"CommonPrefixes"`
	NextContinuationToken string         `xml:"NextContinuationToken"`
}

// Object is one listed object.
type Object struct {
	Key          string `xml:"Key"`
	LastModified string `xml:"LastModified"`
	ETag         string `xml:"ETag"`
	Size         int64  `xml:"Size"`
	StorageClass string `xml:"StorageClass"`
}

// CommonPrefix is a collapsed key prefix from a delimiter listing.
type CommonPrefix struct {
	Prefix string `xml:"Prefix"`
}

// Parse decodes a raw listing payload as returned by
// s3client.ListObjects.
func Parse(payload []byte) (*ListBucketResult, error) {
	var result ListBucketResult
	if err := xml.Unmarshal(payload, &result); err != nil {
		return nil, errors.Wrap(err, "failed to decode listing")
	}
	return &result, nil
}
