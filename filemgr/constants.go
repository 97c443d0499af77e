package filemgr

import "errors"

type EntityType string
type PictureType string

const (
	EntityEvent EntityType = "event"
	EntityVenue EntityType = "venue"

	PicPoster PictureType = "poster"
	PicPhoto  PictureType = "photo"
	PicThumb  PictureType = "thumb"
)

var (
	AllowedExtensions = map[PictureType][]string{
		PicPoster: {".jpg", ".jpeg", ".png", ".gif", ".webp"},
		PicPhoto:  {".jpg", ".jpeg", ".png", ".gif", ".webp"},
		PicThumb:  {".jpg"},
	}

	AllowedMIMEs = map[PictureType][]string{
		PicPoster: {"image/jpeg", "image/png", "image/gif", "image/webp"},
		PicPhoto:  {"image/jpeg", "image/png", "image/gif", "image/webp"},
		PicThumb:  {"image/jpeg"},
	}

	PictureSubfolders = map[PictureType]string{
		PicPoster: "poster",
		PicPhoto:  "photo",
		PicThumb:  "thumb",
	}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)
