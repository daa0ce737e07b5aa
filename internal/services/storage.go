package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"vastra_back_end/internal/database"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// UploadImage pousse un fichier du formulaire vers MinIO sous un nom
// d'objet unique et retourne la clé d'objet stockée en base.
func UploadImage(ctx context.Context, header *multipart.FileHeader) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	ext := filepath.Ext(header.Filename)
	objectName := fmt.Sprintf("products/%s%s", uuid.NewString(), ext)

	_, err = database.MinIO.PutObject(
		ctx,
		os.Getenv("MINIO_BUCKET"),
		objectName,
		f,
		header.Size,
		minio.PutObjectOptions{ContentType: header.Header.Get("Content-Type")},
	)
	if err != nil {
		return "", err
	}

	return objectName, nil
}

// RemoveImage supprime un objet du bucket. Best-effort : l'échec est
// journalisé mais ne remonte pas (le produit est déjà supprimé en base).
func RemoveImage(ctx context.Context, objectName string) {
	if objectName == "" {
		return
	}
	err := database.MinIO.RemoveObject(
		ctx,
		os.Getenv("MINIO_BUCKET"),
		objectName,
		minio.RemoveObjectOptions{},
	)
	if err != nil {
		log.Printf("⚠️ Erreur suppression MinIO %s: %v", objectName, err)
	}
}

// SignedImageURL génère une URL signée (GET) valable pour la durée donnée.
func SignedImageURL(ctx context.Context, objectName string, duration time.Duration) (string, error) {
	reqParams := make(url.Values)

	presignedURL, err := database.MinIO.PresignedGetObject(
		ctx,
		os.Getenv("MINIO_BUCKET"),
		objectName,
		duration,
		reqParams,
	)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}
