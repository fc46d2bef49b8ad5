package blog

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/png"

	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"
)

const (
	maxUploadSize  = 10 << 20 // 10MB per file
	maxUploadFiles = 5
	maxImageWidth  = 1600
	jpegQuality    = 80
)

// Admin API - image upload for blog posts. Files come back as data URIs so
// the client can embed them without a separate asset store.
func (b *BlogModule) uploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "이미지를 업로드해주세요."})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "이미지를 업로드해주세요."})
		return
	}
	if len(files) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, gin.H{"message": "이미지는 최대 5개까지 업로드 가능합니다."})
		return
	}

	imageURLs := make([]string, 0, len(files))
	for _, file := range files {
		dataURL, err := encodeUpload(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		imageURLs = append(imageURLs, dataURL)
	}

	c.JSON(http.StatusOK, gin.H{"imageUrls": imageURLs})
}

type uploadError string

func (e uploadError) Error() string { return string(e) }

const (
	errNotImage = uploadError("이미지 파일만 업로드 가능합니다.")
	errTooLarge = uploadError("이미지 크기는 10MB 이하여야 합니다.")
	errReadFile = uploadError("이미지 업로드에 실패했습니다.")
)

// encodeUpload validates one uploaded file and returns it as a data URI,
// downscaling anything wider than maxImageWidth first.
func encodeUpload(file *multipart.FileHeader) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", errNotImage
	}
	if file.Size > maxUploadSize {
		return "", errTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", errReadFile
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", errReadFile
	}

	if resized, ok := downscale(data); ok {
		data = resized
		contentType = "image/jpeg"
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// downscale re-encodes images wider than maxImageWidth as JPEG. Anything that
// does not decode, or is already small enough, passes through untouched.
func downscale(data []byte) ([]byte, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxImageWidth {
		return nil, false
	}

	newH := h * maxImageWidth / w
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
