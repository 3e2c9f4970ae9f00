// Package images holds the primary-flag bookkeeping for image attachments.
// The functions are pure decisions over already-loaded attachment sets; the
// repositories apply the resulting flags in the same transaction as the row
// changes, so the one-primary-per-owner invariant survives a crash between
// the two steps.
package images

import (
	"bytes"

	"github.com/cutiepets/admin/internal/pkg/models"
)

// HasPrimary reports whether any image in the set carries the primary flag
func HasPrimary(set []models.Image) bool {
	for _, img := range set {
		if img.IsPrimary {
			return true
		}
	}
	return false
}

// AssignOnAdd decides primary flags for a batch of images being attached to
// an owner. If the owner has no primary image yet, the first incoming image
// becomes primary; otherwise every incoming image is non-primary. Flags set
// by the caller on the incoming batch are ignored, so the very first upload
// for an owner is always primary.
func AssignOnAdd(existing, incoming []models.Image) []models.Image {
	out := make([]models.Image, len(incoming))
	copy(out, incoming)

	hasPrimary := HasPrimary(existing)
	for i := range out {
		out[i].IsPrimary = !hasPrimary && i == 0
	}
	return out
}

// ReassignOnDelete returns the image to promote after the given image is
// removed from its owner's set. A promotion happens only when the deleted
// image was primary and images remain: the earliest-uploaded remaining image
// takes over, ties broken by lowest ID. The second return value reports
// whether a promotion is needed.
func ReassignOnDelete(deleted models.Image, remaining []models.Image) (models.Image, bool) {
	if !deleted.IsPrimary || len(remaining) == 0 {
		return models.Image{}, false
	}

	best := remaining[0]
	for _, img := range remaining[1:] {
		if img.UploadedAt.Before(best.UploadedAt) {
			best = img
			continue
		}
		if img.UploadedAt.Equal(best.UploadedAt) && bytes.Compare(img.ID[:], best.ID[:]) < 0 {
			best = img
		}
	}
	return best, true
}
