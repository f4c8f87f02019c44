package termcore

import "encoding/json"

// JSON-string variants of the read surface. This is the stable wire
// format a foreign host consumes: the embedding shim only has to hand
// strings across the boundary, never internal structs.

func marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ListFavoritesJSON returns the favorites as a JSON array of strings.
func (a *API) ListFavoritesJSON() (string, error) {
	return marshal(a.ListFavorites())
}

// ListRecentsJSON returns the recents as a JSON array, newest first.
func (a *API) ListRecentsJSON() (string, error) {
	return marshal(a.ListRecents())
}

// ListTagsJSON returns every tag as a JSON array.
func (a *API) ListTagsJSON() (string, error) {
	return marshal(a.ListTags())
}

// TagsForJSON returns the tags on raw as a JSON array.
func (a *API) TagsForJSON(raw string) (string, error) {
	tags, err := a.TagsFor(raw)
	if err != nil {
		return "", err
	}
	return marshal(tags)
}

// ListProfilesJSON returns the launch profiles as a JSON array.
func (a *API) ListProfilesJSON() (string, error) {
	return marshal(a.ListProfiles())
}

// ListDirectoryJSON returns the flat listing of raw as a JSON array.
func (a *API) ListDirectoryJSON(raw string) (string, error) {
	entries, err := a.ListDirectory(raw)
	if err != nil {
		return "", err
	}
	return marshal(entries)
}

// DetectProjectsJSON returns the ancestor project roots of raw as a
// JSON array.
func (a *API) DetectProjectsJSON(raw string) (string, error) {
	roots, err := a.DetectProjects(raw)
	if err != nil {
		return "", err
	}
	return marshal(roots)
}

// SearchJSON returns ranked search results as a JSON array.
func (a *API) SearchJSON(raw, query string, limit int) (string, error) {
	results, err := a.Search(raw, query, limit)
	if err != nil {
		return "", err
	}
	return marshal(results)
}
