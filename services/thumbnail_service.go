package services

import (
	"log"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

const ProductThumbnailTransformation = "c_fill,w_160,h_200,q_auto,f_auto"

// ThumbnailService builds Cloudinary delivery URLs for product images
type ThumbnailService struct {
	cld            *cloudinary.Cloudinary
	transformation string
}

func NewThumbnailService(cloudName, apiKey, apiSecret string) (*ThumbnailService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &ThumbnailService{cld: cld, transformation: ProductThumbnailTransformation}, nil
}

// ThumbnailURL returns a resized delivery URL for a public id. Absolute URLs and
// empty references are passed through unchanged.
func (s *ThumbnailService) ThumbnailURL(image string) string {
	if image == "" || strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}

	img, err := s.cld.Image(image)
	if err != nil {
		log.Printf("[thumbnail] invalid public id %q: %v", image, err)
		return ""
	}
	img.Transformation = s.transformation

	url, err := img.String()
	if err != nil {
		log.Printf("[thumbnail] failed to build url for %q: %v", image, err)
		return ""
	}
	return url
}
