package store

import (
	"context"
	"fmt"
)

// seedArtists is the catalog written on first access. It is never mutated
// afterwards; ratings reference these ids.
var seedArtists = []Artist{
	{ID: "1", Name: "Aurora", ImageURL: "https://picsum.photos/200", Platform: PlatformSpotify, Genre: "Electro-pop", Followers: 7500000},
	{ID: "2", Name: "Twenty One Pilots", ImageURL: "https://picsum.photos/200", Platform: PlatformYouTube, Genre: "Alternative", Followers: 25000000},
	{ID: "3", Name: "Nina Simone", ImageURL: "https://picsum.photos/200", Platform: PlatformDeezer, Genre: "Jazz", Followers: 5000000},
	{ID: "4", Name: "Jack Johnson", ImageURL: "https://picsum.photos/200", Platform: PlatformAppleMusic, Genre: "Folk", Followers: 9000000},
	{ID: "5", Name: "Billie Eilish", ImageURL: "https://picsum.photos/200", Platform: PlatformSpotify, Genre: "Pop", Followers: 85000000},
	{ID: "6", Name: "Imagine Dragons", ImageURL: "https://picsum.photos/200", Platform: PlatformYouTube, Genre: "Rock", Followers: 30000000},
	{ID: "7", Name: "Adele", ImageURL: "https://picsum.photos/200", Platform: PlatformDeezer, Genre: "Pop", Followers: 78000000},
	{ID: "8", Name: "Bruno Mars", ImageURL: "https://picsum.photos/200", Platform: PlatformSoundCloud, Genre: "Pop/R&B", Followers: 65000000},
}

// Artists returns the catalog, seeding it on first access. Seeding is
// idempotent: once a catalog document exists it is never rewritten.
func (s *Store) Artists(ctx context.Context) ([]Artist, error) {
	artists := loadCollection(ctx, s, artistsKey, []Artist(nil))
	if artists != nil {
		return artists, nil
	}

	seeded := make([]Artist, len(seedArtists))
	copy(seeded, seedArtists)
	if err := saveCollection(ctx, s, artistsKey, seeded); err != nil {
		return nil, fmt.Errorf("seed artists: %w", err)
	}
	return seeded, nil
}

// ArtistByID returns the catalog entry with the given id.
func (s *Store) ArtistByID(ctx context.Context, id string) (Artist, error) {
	artists, err := s.Artists(ctx)
	if err != nil {
		return Artist{}, err
	}
	for _, artist := range artists {
		if artist.ID == id {
			return artist, nil
		}
	}
	return Artist{}, ErrArtistNotFound
}
