package seventv

import "emotebot/internal/emote"

// gqlRequest is the GraphQL request envelope.
type gqlRequest struct {
	Query     string       `json:"query"`
	Variables gqlVariables `json:"variables"`
}

// gqlVariables carries the search parameters. The null-valued fields
// are present because the web client sends them; see the package
// comment in client.go.
type gqlVariables struct {
	Query       string  `json:"query"`
	Page        int     `json:"page"`
	PageSize    int     `json:"pageSize"`
	Limit       int     `json:"limit"`
	GlobalState *string `json:"globalState"`
	SortBy      string  `json:"sortBy"`
	SortOrder   int     `json:"sortOrder"`
	Channel     *string `json:"channel"`
	SubmittedBy *string `json:"submitted_by"`
}

// gqlResponse is the response envelope. A payload missing the nested
// search_emotes field decodes to an empty slice, which the adapter
// reports as zero results rather than an error.
type gqlResponse struct {
	Data struct {
		SearchEmotes []gqlEmote `json:"search_emotes"`
	} `json:"data"`
}

type gqlEmote struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Owner gqlOwner `json:"owner"`
}

type gqlOwner struct {
	ID string `json:"id"`
}

func mapEmotes(entries []gqlEmote) []emote.Emote {
	out := make([]emote.Emote, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		out = append(out, emote.Emote{
			ID:        e.ID,
			Code:      e.Name,
			ImageType: emote.ImageSevenTV,
			URL:       emote.SevenTVImageURL(e.ID),
			OwnerID:   e.Owner.ID,
		})
	}
	return out
}
