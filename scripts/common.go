package main

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

type NamedApiResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

// getJson fetches a PokeAPI resource, going through an on-disk cache so
// repeated runs don't hammer the API. No retries; a failed fetch fails the
// run.
func getJson[T any](cacheDir string, url string) (T, error) {
	var parsed T

	cachePath := cacheFileFor(cacheDir, url)
	if data, err := os.ReadFile(cachePath); err == nil {
		if err := json.Unmarshal(data, &parsed); err == nil {
			return parsed, nil
		}
		// unreadable cache entry, refetch
	}

	response, err := http.Get(url)
	if err != nil {
		return parsed, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return parsed, fmt.Errorf("GET %s: %s", url, response.Status)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return parsed, err
	}

	if err := json.Unmarshal(data, &parsed); err != nil {
		return parsed, err
	}

	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		return parsed, err
	}

	return parsed, nil
}

func cacheFileFor(cacheDir string, url string) string {
	sum := sha1.Sum([]byte(url))
	return filepath.Join(cacheDir, hex.EncodeToString(sum[:])+".json")
}
