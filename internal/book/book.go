package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned by a Repository when no book exists for an id.
var ErrNotFound = errors.New("book not found")

// Book represents a stored book record.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       *int      `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Summary is the projection returned by List.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// Input is the caller-supplied field set for Create and Update.
// Name is a pointer so that an absent name can be told apart from an empty one.
type Input struct {
	Name      *string `json:"name" validate:"required"`
	Year      *int    `json:"year"`
	Author    string  `json:"author"`
	Summary   string  `json:"summary"`
	Publisher string  `json:"publisher"`
	PageCount int     `json:"pageCount"`
	ReadPage  int     `json:"readPage" validate:"ltefield=PageCount"`
	Reading   bool    `json:"reading"`
}

// toBook builds the record to persist, deriving Finished.
func (in Input) toBook() Book {
	b := Book{
		Year:      in.Year,
		Author:    in.Author,
		Summary:   in.Summary,
		Publisher: in.Publisher,
		PageCount: in.PageCount,
		ReadPage:  in.ReadPage,
		Reading:   in.Reading,
		Finished:  in.PageCount == in.ReadPage,
	}
	if in.Name != nil {
		b.Name = *in.Name
	}
	return b
}

func (b Book) summary() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}
