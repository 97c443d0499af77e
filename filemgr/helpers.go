package filemgr

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

func detectPicType(destDir string) PictureType {
	parts := strings.Split(destDir, string(os.PathSeparator))
	if len(parts) == 0 {
		return ""
	}
	last := strings.ToLower(parts[len(parts)-1])
	for picType, folder := range PictureSubfolders {
		if folder == last {
			return picType
		}
	}
	return ""
}

func ensureSafeFilename(name, ext string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	reg := regexp.MustCompile(`[^a-zA-Z0-9_\-]`)
	name = reg.ReplaceAllString(name, "")
	return name + ext
}

func isExtensionAllowed(ext string, picType PictureType) bool {
	for _, a := range AllowedExtensions[picType] {
		if ext == a {
			return true
		}
	}
	return false
}

func isMIMEAllowed(mimeType string, picType PictureType) bool {
	for _, a := range AllowedMIMEs[picType] {
		if mimeType == a {
			return true
		}
	}
	return false
}

func ResolvePath(entity EntityType, picType PictureType) string {
	subfolder := PictureSubfolders[picType]
	if subfolder == "" {
		subfolder = "misc"
	}
	return filepath.Join("static", "uploads", strings.ToLower(string(entity)), subfolder)
}

func ValidateImageDimensions(img image.Image, maxWidth, maxHeight int) error {
	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		return fmt.Errorf("image dimensions %dx%d exceed max %dx%d", bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)
	}
	return nil
}
