// internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)
	maxImageW     = 1600
	maxImageH     = 1600
	webpQuality   = 80
)

type Service struct {
	Client     *alioss.Client
	Bucket     *alioss.Bucket
	BucketName string
	Endpoint   string
	// BaseURL is the public prefix images are served from,
	// e.g. https://<bucket>.<endpoint>
	BaseURL string
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// NewServiceFromEnv builds a client from OSS_* env vars.
func NewServiceFromEnv() (*Service, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")

	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("oss: OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET must be set")
	}

	client, err := alioss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss: new client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss: open bucket %s: %w", bucketName, err)
	}

	baseURL := getEnv("OSS_PUBLIC_BASE_URL")
	if baseURL == "" {
		host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
		baseURL = fmt.Sprintf("https://%s.%s", bucketName, host)
	}

	return &Service{
		Client:     client,
		Bucket:     bucket,
		BucketName: bucketName,
		Endpoint:   endpoint,
		BaseURL:    strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *Service) PublicURL(key string) string {
	return s.BaseURL + "/" + strings.TrimLeft(key, "/")
}

// KeyFromPublicURL recovers the object key (deletion handle) from a
// public URL previously returned by PublicURL.
func (s *Service) KeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil {
		return "", fmt.Errorf("oss: parse url: %w", err)
	}
	key := strings.TrimLeft(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("oss: no object key in %q", publicURL)
	}
	return key, nil
}

/* =======================================================================
   Upload
======================================================================= */

// UploadImage re-encodes fh into WebP (resized to fit 1600x1600) and
// stores it under dir. Returns the public URL and the object key.
func (s *Service) UploadImage(ctx context.Context, fh *multipart.FileHeader, dir string) (string, string, error) {
	if fh == nil {
		return "", "", fmt.Errorf("oss: no file")
	}
	if fh.Size > maxUploadSize {
		return "", "", fmt.Errorf("oss: file exceeds %d bytes", maxUploadSize)
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("oss: open upload: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return "", "", fmt.Errorf("oss: unsupported image format: %w", err)
	}

	img = fitImage(img, maxImageW, maxImageH)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", "", fmt.Errorf("oss: webp encode: %w", err)
	}

	key := path.Join(strings.Trim(dir, "/"), uuid.NewString()+".webp")
	opts := []alioss.Option{
		alioss.WithContext(ctx),
		alioss.ContentType("image/webp"),
		alioss.ContentDisposition("inline"),
		alioss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, &buf, opts...); err != nil {
		return "", "", fmt.Errorf("oss: put object: %w", err)
	}
	return s.PublicURL(key), key, nil
}

func fitImage(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return img
	}
	scale := float64(maxW) / float64(w)
	if s2 := float64(maxH) / float64(h); s2 < scale {
		scale = s2
	}
	nw, nh := int(float64(w)*scale), int(float64(h)*scale)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

/* =======================================================================
   Delete
======================================================================= */

func (s *Service) DeleteByKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("oss: empty key")
	}
	return s.Bucket.DeleteObject(key, alioss.WithContext(ctx))
}

// DeleteMany deletes each key independently; failures never abort the
// batch. Returns the keys that failed with their errors.
func (s *Service) DeleteMany(ctx context.Context, keys []string) map[string]error {
	failed := make(map[string]error)
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if err := s.Bucket.DeleteObject(k, alioss.WithContext(ctx)); err != nil {
			failed[k] = err
		}
	}
	return failed
}

/* =======================================================================
   ENV convenience wrappers (controllers use these)
======================================================================= */

func UploadImageENV(fh *multipart.FileHeader, dir string) (string, string, error) {
	svc, err := NewServiceFromEnv()
	if err != nil {
		return "", "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return svc.UploadImage(ctx, fh, dir)
}

func DeleteByKeyENV(key string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	svc, err := NewServiceFromEnv()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svc.DeleteByKey(ctx, key)
}

func DeleteManyENV(keys []string, timeout time.Duration) map[string]error {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	svc, err := NewServiceFromEnv()
	if err != nil {
		failed := make(map[string]error, len(keys))
		for _, k := range keys {
			failed[k] = err
		}
		return failed
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svc.DeleteMany(ctx, keys)
}
