package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sharebnb-gmm/pool-party-api/internal/imaging"
	"github.com/sharebnb-gmm/pool-party-api/internal/storage"
)

func readUpload(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}

	return data, http.DetectContentType(data), nil
}

// uploadOriginal pushes the file as-is and returns its URL, or an error when
// storage is down. Callers decide whether that aborts the request.
func uploadOriginal(
	ctx context.Context,
	uploader storage.Uploader,
	fh *multipart.FileHeader,
) (string, error) {

	data, contentType, err := readUpload(fh)
	if err != nil {
		return "", err
	}

	return uploader.Upload(ctx, fh.Filename, contentType, bytes.NewReader(data))
}

// uploadWithThumbnail is the best-effort two-phase path used by signup and
// pool creation: try the original, try the resized copy, log whatever failed
// and hand back empty URLs for it. The caller's database write goes ahead
// regardless.
func uploadWithThumbnail(
	ctx context.Context,
	uploader storage.Uploader,
	fh *multipart.FileHeader,
) (origURL string, smallURL string) {

	data, contentType, err := readUpload(fh)
	if err != nil {
		log.Warn().Err(err).Str("file", fh.Filename).Msg("upload skipped, unreadable file")
		return "", ""
	}

	origURL, err = uploader.Upload(ctx, fh.Filename, contentType, bytes.NewReader(data))
	if err != nil {
		log.Warn().Err(err).Str("file", fh.Filename).Msg("original upload failed")
		origURL = ""
	}

	small, smallType, err := imaging.Thumbnail(data)
	if err != nil {
		log.Warn().Err(err).Str("file", fh.Filename).Msg("thumbnail failed")
		return origURL, ""
	}

	smallURL, err = uploader.Upload(ctx, "small_"+fh.Filename+".webp", smallType, bytes.NewReader(small))
	if err != nil {
		log.Warn().Err(err).Str("file", fh.Filename).Msg("thumbnail upload failed")
		smallURL = ""
	}

	return origURL, smallURL
}
