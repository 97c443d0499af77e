package filemgr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// SaveFile saves an uploaded file to disk with extension/MIME validation.
func SaveFile(reader io.Reader, header *multipart.FileHeader, destDir string, maxSize int64, customNameFn func(original string) string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	picType := detectPicType(destDir)
	if picType == "" {
		return "", fmt.Errorf("unknown picture type for folder: %s", destDir)
	}

	if !isExtensionAllowed(ext, picType) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidExtension, ext, picType)
	}

	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read header: %w", err)
	}
	mimeType := http.DetectContentType(buf[:n])

	if mimeType == "application/octet-stream" {
		if formMime := header.Header.Get("Content-Type"); formMime != "" {
			mimeType = formMime
		}
	}

	if !isMIMEAllowed(mimeType, picType) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidMIME, mimeType, picType)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", destDir, err)
	}

	filename := ""
	if customNameFn != nil {
		filename = strings.TrimSpace(customNameFn(header.Filename))
	}
	if filename == "" {
		filename = uuid.New().String() + ext
	} else {
		filename = ensureSafeFilename(filename, ext)
	}

	fullPath := filepath.Join(destDir, filename)
	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", fullPath, err)
	}
	defer out.Close()

	if _, err := out.Write(buf[:n]); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	written, err := io.Copy(out, io.LimitReader(reader, maxSize-int64(n)))
	if err != nil {
		return "", fmt.Errorf("write body: %w", err)
	}
	if maxSize > 0 && written+int64(n) > maxSize {
		return "", ErrFileTooLarge
	}

	return filename, nil
}

// SaveFileForEntity stores an image for an entity: decode, strip EXIF by
// re-encoding, save, then generate a thumbnail alongside.
func SaveFileForEntity(file multipart.File, header *multipart.FileHeader, entity EntityType, picType PictureType) (string, error) {
	defer file.Close()
	dest := ResolvePath(entity, picType)

	buf, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err == nil {
		if strip, err := stripEXIF(img); err == nil {
			buf = strip.Bytes()
		}

		fileName, err := SaveFile(bytes.NewReader(buf), header, dest, 10<<20, nil)
		if err != nil {
			return "", err
		}

		_ = generateThumbnail(img, entity, fileName)

		return fileName, nil
	}

	// fallback to plain save if decode fails
	return SaveFile(bytes.NewReader(buf), header, dest, 10<<20, nil)
}

// SaveFormFile saves the first file under formKey, or "" when absent and
// not required.
func SaveFormFile(form *multipart.Form, formKey string, entity EntityType, picType PictureType, required bool) (string, error) {
	files := form.File[formKey]
	if len(files) == 0 {
		if required {
			return "", fmt.Errorf("missing required file: %s", formKey)
		}
		return "", nil
	}
	file, err := files[0].Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", formKey, err)
	}
	return SaveFileForEntity(file, files[0], entity, picType)
}

func stripEXIF(img image.Image) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 90})
	return buf, err
}

func generateThumbnail(img image.Image, entity EntityType, baseFilename string) error {
	resized := imaging.Resize(img, 300, 0, imaging.Lanczos) // maintain aspect ratio
	name := strings.TrimSuffix(baseFilename, filepath.Ext(baseFilename)) + ".jpg"
	path := filepath.Join(ResolvePath(entity, PicThumb), name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}

	return nil
}
