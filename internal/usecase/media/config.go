package media

const (
	// ImageWaveSize is how many gallery images are processed concurrently.
	ImageWaveSize = 5
	// VideoWaveSize is smaller because transcoding is much heavier.
	VideoWaveSize = 3

	// DeleteBatchSize is the storage API limit for one bulk delete call.
	DeleteBatchSize = 1000
)

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

var videoExtensions = map[string]string{
	"video/mp4":       "mp4",
	"video/webm":      "webm",
	"video/quicktime": "mov",
	"video/x-msvideo": "avi",
}

// ExtensionFor maps a declared MIME type to a canonical file extension,
// falling back to "bin" for images and "mp4" for videos.
func ExtensionFor(family Family, mimeType string) string {
	switch family {
	case FamilyVideo:
		if ext, ok := videoExtensions[mimeType]; ok {
			return ext
		}
		return "mp4"
	default:
		if ext, ok := imageExtensions[mimeType]; ok {
			return ext
		}
		return "bin"
	}
}
