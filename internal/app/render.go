package app

import (
	tele "gopkg.in/telebot.v4"

	"emotebot/internal/emote"
)

const (
	noResultsID    = "404"
	noResultsTitle = "No results for your query :("
	noResultsText  = "oops :("
)

// buildInlineResults maps search results to inline answer payloads by
// image type. Emotes with an unrecognized type are skipped silently.
// An empty mapped list collapses to a single "no results" article —
// deliberately a different shape from the plain-text reply the direct
// handler sends for an empty search.
func buildInlineResults(emotes []emote.Emote) tele.Results {
	results := make(tele.Results, 0, len(emotes))
	for _, e := range emotes {
		switch e.ImageType {
		case emote.ImagePNG:
			asset := emote.BTTVImageURL(e.ID)
			photo := &tele.PhotoResult{
				URL:      asset,
				ThumbURL: asset,
				Title:    e.Code,
			}
			photo.SetResultID(e.ID)
			results = append(results, photo)
		case emote.ImageGIF:
			asset := emote.BTTVImageURL(e.ID)
			gif := &tele.GifResult{
				URL:      asset,
				ThumbURL: asset,
				Title:    e.Code,
			}
			gif.SetResultID(e.ID)
			results = append(results, gif)
		case emote.ImageSevenTV:
			// The adapter supplies the direct asset URL; it is wrapped
			// through the conversion proxy exactly once here.
			asset := emote.ConvertURL(e.URL)
			gif := &tele.GifResult{
				URL:      asset,
				ThumbURL: asset,
				Title:    e.Code,
			}
			gif.SetResultID(e.ID)
			results = append(results, gif)
		}
	}

	if len(results) == 0 {
		article := &tele.ArticleResult{
			Title: noResultsTitle,
			Text:  noResultsText,
		}
		article.SetResultID(noResultsID)
		results = append(results, article)
	}
	return results
}
