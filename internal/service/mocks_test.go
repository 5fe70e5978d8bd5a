package service

import (
	"context"
	"errors"
	"time"

	"github.com/eterna-app/eterna/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn            func(ctx context.Context, user models.User) (models.User, error)
	findActiveUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn          func(ctx context.Context, userID int64) (models.User, error)
	updateLastLoginFn       func(ctx context.Context, userID int64, at time.Time) error
	updatePasswordHashFn    func(ctx context.Context, userID int64, passwordHash string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindActiveUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findActiveUserByEmailFn != nil {
		return m.findActiveUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	if m.updateLastLoginFn != nil {
		return m.updateLastLoginFn(ctx, userID, at)
	}
	return nil
}

func (m *mockUserRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	if m.updatePasswordHashFn != nil {
		return m.updatePasswordHashFn(ctx, userID, passwordHash)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ProfileRepository
// ─────────────────────────────────────────────

type mockProfileRepository struct {
	findProfileByUserIDFn func(ctx context.Context, userID int64) (models.Profile, error)
	upsertProfileFn       func(ctx context.Context, userID int64, update models.ProfileUpdate) error
	setProfilePictureFn   func(ctx context.Context, userID int64, path string) (string, error)
	capsuleStatsFn        func(ctx context.Context, userID int64) (models.CapsuleStats, error)
}

func (m *mockProfileRepository) FindProfileByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	if m.findProfileByUserIDFn != nil {
		return m.findProfileByUserIDFn(ctx, userID)
	}
	return models.Profile{}, nil
}

func (m *mockProfileRepository) UpsertProfile(ctx context.Context, userID int64, update models.ProfileUpdate) error {
	if m.upsertProfileFn != nil {
		return m.upsertProfileFn(ctx, userID, update)
	}
	return nil
}

func (m *mockProfileRepository) SetProfilePicture(ctx context.Context, userID int64, path string) (string, error) {
	if m.setProfilePictureFn != nil {
		return m.setProfilePictureFn(ctx, userID, path)
	}
	return "", nil
}

func (m *mockProfileRepository) CapsuleStats(ctx context.Context, userID int64) (models.CapsuleStats, error) {
	if m.capsuleStatsFn != nil {
		return m.capsuleStatsFn(ctx, userID)
	}
	return models.CapsuleStats{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.CapsuleRepository
// ─────────────────────────────────────────────

type mockCapsuleRepository struct {
	createCapsuleFn      func(ctx context.Context, capsule models.Capsule) (int64, error)
	listCapsulesByOwnerFn func(ctx context.Context, userID int64) ([]models.Capsule, error)
	findCapsuleByIDFn    func(ctx context.Context, capsuleID int64) (models.Capsule, error)
	updateCapsuleFn      func(ctx context.Context, update models.CapsuleUpdate) error
	softDeleteCapsuleFn  func(ctx context.Context, capsuleID, userID int64, at time.Time) error
}

func (m *mockCapsuleRepository) CreateCapsule(ctx context.Context, capsule models.Capsule) (int64, error) {
	if m.createCapsuleFn != nil {
		return m.createCapsuleFn(ctx, capsule)
	}
	return 0, nil
}

func (m *mockCapsuleRepository) ListCapsulesByOwner(ctx context.Context, userID int64) ([]models.Capsule, error) {
	if m.listCapsulesByOwnerFn != nil {
		return m.listCapsulesByOwnerFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockCapsuleRepository) FindCapsuleByID(ctx context.Context, capsuleID int64) (models.Capsule, error) {
	if m.findCapsuleByIDFn != nil {
		return m.findCapsuleByIDFn(ctx, capsuleID)
	}
	return models.Capsule{}, nil
}

func (m *mockCapsuleRepository) UpdateCapsule(ctx context.Context, update models.CapsuleUpdate) error {
	if m.updateCapsuleFn != nil {
		return m.updateCapsuleFn(ctx, update)
	}
	return nil
}

func (m *mockCapsuleRepository) SoftDeleteCapsule(ctx context.Context, capsuleID, userID int64, at time.Time) error {
	if m.softDeleteCapsuleFn != nil {
		return m.softDeleteCapsuleFn(ctx, capsuleID, userID, at)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.MediaRepository
// ─────────────────────────────────────────────

type mockMediaRepository struct {
	createMediaFn        func(ctx context.Context, media models.Media) (models.Media, error)
	listMediaByCapsuleFn func(ctx context.Context, capsuleID int64) ([]models.Media, error)
	findMediaByIDFn      func(ctx context.Context, mediaID int64) (models.Media, error)
	deleteMediaFn        func(ctx context.Context, mediaID int64) error
}

func (m *mockMediaRepository) CreateMedia(ctx context.Context, media models.Media) (models.Media, error) {
	if m.createMediaFn != nil {
		return m.createMediaFn(ctx, media)
	}
	return media, nil
}

func (m *mockMediaRepository) ListMediaByCapsule(ctx context.Context, capsuleID int64) ([]models.Media, error) {
	if m.listMediaByCapsuleFn != nil {
		return m.listMediaByCapsuleFn(ctx, capsuleID)
	}
	return nil, nil
}

func (m *mockMediaRepository) FindMediaByID(ctx context.Context, mediaID int64) (models.Media, error) {
	if m.findMediaByIDFn != nil {
		return m.findMediaByIDFn(ctx, mediaID)
	}
	return models.Media{}, nil
}

func (m *mockMediaRepository) DeleteMedia(ctx context.Context, mediaID int64) error {
	if m.deleteMediaFn != nil {
		return m.deleteMediaFn(ctx, mediaID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ShareRepository
// ─────────────────────────────────────────────

type mockShareRepository struct {
	createShareFn func(ctx context.Context, share models.Share) (models.Share, error)
}

func (m *mockShareRepository) CreateShare(ctx context.Context, share models.Share) (models.Share, error) {
	if m.createShareFn != nil {
		return m.createShareFn(ctx, share)
	}
	return share, nil
}

// ─────────────────────────────────────────────
// Mock: store.FileStorage
// ─────────────────────────────────────────────

type mockFileStorage struct {
	saveFn   func(ctx context.Context, relPath string, data []byte) (string, error)
	removeFn func(ctx context.Context, storedPath string) error
}

func (m *mockFileStorage) Save(ctx context.Context, relPath string, data []byte) (string, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, relPath, data)
	}
	return "uploads/" + relPath, nil
}

func (m *mockFileStorage) Remove(ctx context.Context, storedPath string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, storedPath)
	}
	return nil
}
