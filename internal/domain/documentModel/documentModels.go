package documentModel

import (
	"path/filepath"
	"strings"
)

// MediaType is the declared kind of an uploaded document. Dispatch in the
// extractor is total over this set, everything else is Unsupported.
type MediaType string

const (
	PlainText MediaType = "text/plain"
	Markdown  MediaType = "text/markdown"
	MarkdownX MediaType = "text/x-markdown"
	HTML      MediaType = "text/html"
	PDF       MediaType = "application/pdf"
	DOCX      MediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	ImagePNG  MediaType = "image/png"
	ImageJPEG MediaType = "image/jpeg"
	ImageJPG  MediaType = "image/jpg"
	ImageGIF  MediaType = "image/gif"

	AudioMPEG MediaType = "audio/mpeg"
	AudioWAV  MediaType = "audio/wav"
	AudioOGG  MediaType = "audio/ogg"
	AudioMP3  MediaType = "audio/mp3"
	AudioMP4  MediaType = "audio/mp4"
	AudioM4A  MediaType = "audio/x-m4a"
	AudioFLAC MediaType = "audio/flac"
	AudioFLCX MediaType = "audio/x-flac"

	Unsupported MediaType = ""
)

// RawDocument is the single boundary value type: content bytes plus the
// declared media type and the upload filename. Built once per request at the
// HTTP boundary, read-only afterwards.
type RawDocument struct {
	Content   []byte
	MediaType MediaType
	Filename  string
}

func (t MediaType) IsImage() bool {
	switch t {
	case ImagePNG, ImageJPEG, ImageJPG, ImageGIF:
		return true
	}
	return false
}

func (t MediaType) IsAudio() bool {
	switch t {
	case AudioMPEG, AudioWAV, AudioOGG, AudioMP3, AudioMP4, AudioM4A, AudioFLAC, AudioFLCX:
		return true
	}
	return false
}

func (t MediaType) IsPlainReadable() bool {
	switch t {
	case PlainText, Markdown, MarkdownX, HTML:
		return true
	}
	return false
}

// Known reports whether the media type is part of the enumerated set.
func Known(t MediaType) bool {
	return t.IsPlainReadable() || t.IsImage() || t.IsAudio() || t == PDF || t == DOCX
}

var byExtension = map[string]MediaType{
	".txt":  PlainText,
	".md":   Markdown,
	".html": HTML,
	".htm":  HTML,
	".pdf":  PDF,
	".docx": DOCX,
	".png":  ImagePNG,
	".jpg":  ImageJPEG,
	".jpeg": ImageJPEG,
	".gif":  ImageGIF,
	".mp3":  AudioMP3,
	".wav":  AudioWAV,
	".ogg":  AudioOGG,
	".m4a":  AudioM4A,
	".mp4":  AudioMP4,
	".flac": AudioFLAC,
}

// FromUpload resolves the media type from the multipart Content-Type header,
// falling back to the filename extension when the header is missing or
// generic (browsers send application/octet-stream for a lot of uploads).
func FromUpload(contentType, filename string) MediaType {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	declared := MediaType(strings.ToLower(strings.TrimSpace(contentType)))
	if Known(declared) {
		return declared
	}
	if t, ok := byExtension[strings.ToLower(filepath.Ext(filename))]; ok {
		return t
	}
	return declared
}
