package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"workshop_hub_backend/internal/config"
	"workshop_hub_backend/internal/util"
	"workshop_hub_backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider 定义通用存储接口
type StorageProvider interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	PresignUpload(ctx context.Context, key string, expiry time.Duration) (string, error)
	PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// LocalStorageProvider 本地存储实现，开发环境用
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, key)
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}
	return "/uploads/" + key, nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, key))
}

func (p *LocalStorageProvider) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(filepath.Join(p.Config.LocalPath, key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// 本地存储无签名能力，直接返回可访问路径
func (p *LocalStorageProvider) PresignUpload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "/uploads/" + key, nil
}

func (p *LocalStorageProvider) PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "/uploads/" + key, nil
}

// MinioStorageProvider MinIO存储实现
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return "/" + p.Config.MinioBucket + "/" + key, nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, key string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, key, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) Exists(ctx context.Context, key string) (bool, error) {
	_, err := p.Client.StatObject(ctx, p.Config.MinioBucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (p *MinioStorageProvider) PresignUpload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := p.Client.PresignedPutObject(ctx, p.Config.MinioBucket, key, expiry)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (p *MinioStorageProvider) PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=\"%s\"", filepath.Base(key)))
	u, err := p.Client.PresignedGetObject(ctx, p.Config.MinioBucket, key, expiry, reqParams)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// StorageService 文件存储服务。工作坊资料与作业评测资源均以对象键
// 存库，客户端通过限时签名URL直传直取。
type StorageService struct {
	Provider StorageProvider
	Expiry   time.Duration
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	if cfg.Storage.Type == util.StorageMinio {
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err != nil {
			logger.Log.Error("Failed to initialize MinIO client, falling back to local storage", zap.Error(err))
		} else {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return &StorageService{Provider: provider, Expiry: cfg.Storage.PresignExpiry}
}

// ObjectKey 按用途归档对象键，带时间戳和随机段防止覆盖
func ObjectKey(purpose string, ownerID uint, filename string) string {
	base := strings.ReplaceAll(filepath.Base(filename), " ", "_")
	unique := fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.New().String()[:8], base)

	switch purpose {
	case util.UploadPurposeWorkshopHome:
		return fmt.Sprintf("workshops/%d/home/%s", ownerID, unique)
	case util.UploadPurposeAssignmentGrader:
		return fmt.Sprintf("assignments/%d/grader/%s", ownerID, unique)
	case util.UploadPurposeAssignmentNotes:
		return fmt.Sprintf("assignments/%d/notebook/%s", ownerID, unique)
	default:
		return fmt.Sprintf("misc/%d/%s", ownerID, unique)
	}
}

type UploadTicket struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"uploadUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// GenerateUploadURL 生成直传签名URL，调用方上传完成后将Key写回对应资源
func (s *StorageService) GenerateUploadURL(ctx context.Context, purpose string, ownerID uint, filename string) (*UploadTicket, error) {
	key := ObjectKey(purpose, ownerID, filename)
	uploadURL, err := s.Provider.PresignUpload(ctx, key, s.Expiry)
	if err != nil {
		return nil, err
	}
	return &UploadTicket{
		Key:       key,
		UploadURL: uploadURL,
		ExpiresAt: time.Now().Add(s.Expiry),
	}, nil
}

// GenerateDownloadURL 生成限时下载URL，对象不存在时报 not found
func (s *StorageService) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	exists, err := s.Provider.Exists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", util.NotFoundError("object not found in storage")
	}
	return s.Provider.PresignDownload(ctx, key, s.Expiry)
}

func (s *StorageService) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	return s.Provider.Upload(ctx, key, reader, size, contentType)
}

func (s *StorageService) Delete(ctx context.Context, key string) error {
	return s.Provider.Delete(ctx, key)
}
