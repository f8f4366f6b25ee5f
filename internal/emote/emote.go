// Package emote defines the canonical emote record every provider is
// mapped into, the image-type tags that drive rendering, and the URL
// templates for the emote CDNs and the format-conversion proxy.
package emote

import "fmt"

// ImageType tags how an emote is rendered. Unrecognized values are
// excluded from inline rendering rather than rejected.
type ImageType string

const (
	ImagePNG ImageType = "png"
	ImageGIF ImageType = "gif"
	// ImageSevenTV marks 7TV emotes, which are served as WebP and go
	// through the conversion proxy instead of a direct CDN fetch.
	ImageSevenTV ImageType = "7tv"
)

// Emote is the canonical record the aggregator and renderers consume.
// Records are immutable once produced by an adapter; the aggregator
// only filters and concatenates them.
type Emote struct {
	// ID is opaque and scoped to the provider's namespace.
	ID string
	// Code is the display/search name, matched case-insensitively as a
	// substring. Adapters never emit records with an empty Code.
	Code      string
	ImageType ImageType
	// URL is the direct asset URL, set only for 7TV emotes.
	URL string
	// OwnerID is the provider-reported uploader. Informational only;
	// never used for search or ranking.
	OwnerID string
}

const (
	bttvCDNTemplate    = "https://cdn.betterttv.net/emote/%s/3x"
	sevenTVCDNTemplate = "https://cdn.7tv.app/emote/%s/3x"
	convertTemplate    = "https://tools.vanawy.dev/webp2gif/?url=%s"
)

// BTTVImageURL returns the BetterTTV CDN URL for an emote id.
func BTTVImageURL(id string) string {
	return fmt.Sprintf(bttvCDNTemplate, id)
}

// SevenTVImageURL returns the 7TV CDN URL for an emote id.
func SevenTVImageURL(id string) string {
	return fmt.Sprintf(sevenTVCDNTemplate, id)
}

// ConvertURL wraps a direct asset URL in the WebP-to-GIF conversion
// proxy. The proxy expects the source URL verbatim, not query-escaped.
func ConvertURL(url string) string {
	return fmt.Sprintf(convertTemplate, url)
}
