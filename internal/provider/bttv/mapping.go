package bttv

import "emotebot/internal/emote"

// apiEmote is the BetterTTV emote payload. Its fields happen to
// resemble the canonical record, but they are still mapped explicitly
// so drift in the provider schema is caught at this boundary.
type apiEmote struct {
	ID        string   `json:"id"`
	Code      string   `json:"code"`
	ImageType string   `json:"imageType"`
	UserID    string   `json:"userId"`
	User      *apiUser `json:"user"`
}

// apiUser is the uploader object attached to shared emotes. Global
// emotes carry a bare userId instead.
type apiUser struct {
	ID string `json:"id"`
}

func mapEmotes(entries []apiEmote) []emote.Emote {
	out := make([]emote.Emote, 0, len(entries))
	for _, e := range entries {
		if e.Code == "" {
			continue
		}
		owner := e.UserID
		if owner == "" && e.User != nil {
			owner = e.User.ID
		}
		out = append(out, emote.Emote{
			ID:        e.ID,
			Code:      e.Code,
			ImageType: emote.ImageType(e.ImageType),
			OwnerID:   owner,
		})
	}
	return out
}
