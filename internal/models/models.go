package models

import "time"

// JSON field names follow the lowercase column names Postgres reports,
// which is what the frontend was built against.

type MediaType string

const (
	MediaTypeMovie    MediaType = "Movie"
	MediaTypeTVSeries MediaType = "TVSeries"
)

// ──────────────────── Media ────────────────────

// MediaItem is the base record shared by movies and TV series. Nullable
// columns are pointers so missing values serialize as null.
type MediaItem struct {
	MediaID      int       `json:"mediaid" db:"mediaid"`
	Title        string    `json:"title" db:"title"`
	ReleaseYear  *int      `json:"releaseyear" db:"releaseyear"`
	Description  *string   `json:"description" db:"description"`
	Rating       *float64  `json:"rating" db:"rating"`
	Poster       *string   `json:"poster" db:"poster"`
	LanguageName *string   `json:"languagename" db:"languagename"`
	MediaType    MediaType `json:"mediatype,omitempty" db:"mediatype"`
}

type MovieDetails struct {
	MediaItem
	Duration    *int         `json:"duration" db:"duration"`
	Budget      *int64       `json:"budget" db:"budget"`
	Revenue     *int64       `json:"revenue" db:"revenue"`
	TrailerLink *string      `json:"trailerlink" db:"trailerlink"`
	Genres      []Genre      `json:"genres"`
	Cast        []CastMember `json:"cast"`
	Crew        []CrewMember `json:"crew"`
	Studios     []Studio     `json:"studios"`
}

type TVShowDetails struct {
	MediaItem
	IsOngoing       *bool        `json:"isongoing" db:"isongoing"`
	NumberOfSeasons *int         `json:"numberofseasons" db:"numberofseasons"`
	Genres          []Genre      `json:"genres"`
	Cast            []CastMember `json:"cast"`
	Crew            []CrewMember `json:"crew"`
	Studios         []Studio     `json:"studios"`
	Seasons         []Season     `json:"seasons"`
}

type Season struct {
	SeasonNo     int        `json:"seasonno" db:"seasonno"`
	SeasonTitle  *string    `json:"seasontitle" db:"seasontitle"`
	ReleaseDate  *time.Time `json:"releasedate" db:"releasedate"`
	Description  *string    `json:"description" db:"description"`
	AvgRating    *float64   `json:"avgrating" db:"avgrating"`
	TrailerLink  *string    `json:"trailerlink" db:"trailerlink"`
	EpisodeCount *int       `json:"episodecount" db:"episodecount"`
	Episodes     []Episode  `json:"episodes"`
}

type Episode struct {
	SeasonNo     int      `json:"seasonno" db:"seasonno"`
	EpisodeNo    int      `json:"episodeno" db:"episodeno"`
	EpisodeTitle *string  `json:"episodetitle" db:"episodetitle"`
	Duration     *int     `json:"duration" db:"duration"`
	AvgRating    *float64 `json:"avgrating" db:"avgrating"`
}

// SearchResult is a media row plus the query-time relevance tier used to
// order search output. Relevance is never persisted.
type SearchResult struct {
	MediaID     int       `json:"mediaid" db:"mediaid"`
	Title       string    `json:"title" db:"title"`
	ReleaseYear *int      `json:"releaseyear" db:"releaseyear"`
	Description *string   `json:"description" db:"description"`
	Rating      *float64  `json:"rating" db:"rating"`
	Poster      *string   `json:"poster" db:"poster"`
	MediaType   MediaType `json:"mediatype" db:"mediatype"`
	Relevance   int       `json:"relevance" db:"relevance"`
}

// ──────────────────── Relations ────────────────────

type Genre struct {
	GenreID   int    `json:"genreid" db:"genreid"`
	GenreName string `json:"genrename" db:"genrename"`
}

// GenreCount is a genre plus the number of titles carrying it.
type GenreCount struct {
	Genre
	TitleCount int `json:"title_count" db:"title_count"`
}

type CastMember struct {
	PersonID      int     `json:"personid" db:"personid"`
	FullName      string  `json:"fullname" db:"fullname"`
	Picture       *string `json:"picture" db:"picture"`
	CharacterName *string `json:"charactername" db:"charactername"`
}

type CrewMember struct {
	PersonID int     `json:"personid" db:"personid"`
	FullName string  `json:"fullname" db:"fullname"`
	Picture  *string `json:"picture" db:"picture"`
	CrewRole string  `json:"crewrole" db:"crewrole"`
}

type Studio struct {
	StudioID   int     `json:"studioid" db:"studioid"`
	StudioName string  `json:"studioname" db:"studioname"`
	LogoURL    *string `json:"logourl" db:"logourl"`
	WebsiteURL *string `json:"websiteurl" db:"websiteurl"`
}

// ──────────────────── Person ────────────────────

type Person struct {
	PersonID    int        `json:"personid" db:"personid"`
	FullName    string     `json:"fullname" db:"fullname"`
	Picture     *string    `json:"picture" db:"picture"`
	Biography   *string    `json:"biography" db:"biography"`
	Nationality *string    `json:"nationality" db:"nationality"`
	DateOfBirth *time.Time `json:"dateofbirth" db:"dateofbirth"`
}

// PersonSearchResult is a person row plus their distinct credit count.
type PersonSearchResult struct {
	Person
	CreditCount int `json:"credit_count" db:"credit_count"`
}

// Credit is one filmography entry: a media the person worked on and how.
type Credit struct {
	MediaID       int       `json:"mediaid" db:"mediaid"`
	Title         string    `json:"title" db:"title"`
	Poster        *string   `json:"poster" db:"poster"`
	ReleaseYear   *int      `json:"releaseyear" db:"releaseyear"`
	MediaType     MediaType `json:"mediatype" db:"mediatype"`
	CrewRole      string    `json:"crewrole" db:"crewrole"`
	CharacterName *string   `json:"charactername" db:"charactername"`
}

type TopActor struct {
	PersonID   int      `json:"personid" db:"personid"`
	FullName   string   `json:"fullname" db:"fullname"`
	Picture    *string  `json:"picture" db:"picture"`
	TitleCount int      `json:"title_count" db:"title_count"`
	AvgRating  *float64 `json:"avg_rating" db:"avg_rating"`
}
