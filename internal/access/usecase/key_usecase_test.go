package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	accessService "github.com/keypanel/keypanel/internal/access/service"
	"github.com/keypanel/keypanel/internal/access/usecase/mocks"
	databaseMocks "github.com/keypanel/keypanel/internal/database/mocks"
	apperrors "github.com/keypanel/keypanel/internal/errors"
)

func newKeyUseCase(
	keyRepo KeyRepository,
	auditUC AuditLogUseCase,
) *DefaultKeyUseCase {
	return NewDefaultKeyUseCase(
		&databaseMocks.PassthroughTxManager{},
		keyRepo,
		auditUC,
		accessService.NewSecretService(),
	)
}

// TestDefaultKeyUseCase_Create tests key creation with auditing.
func TestDefaultKeyUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PersistsThenAudits", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		mockAuditUC := new(mocks.MockAuditLogUseCase)
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)
		input := &accessDomain.CreateKeyInput{Username: "bob", Value: "bob-secret", Role: accessDomain.RoleUser}

		mockKeyRepo.On("GetByUsername", mock.Anything, "bob").
			Return(nil, accessDomain.ErrKeyNotFound).Once()
		mockKeyRepo.On("GetByValue", mock.Anything, "bob-secret").
			Return(nil, accessDomain.ErrKeyNotFound).Once()

		var persistedAt, auditedAt int
		calls := 0
		mockKeyRepo.On("Create", mock.Anything, mock.MatchedBy(func(key *accessDomain.Key) bool {
			return key.Username == "bob" && key.Value == "bob-secret" && key.Role == accessDomain.RoleUser
		})).Run(func(mock.Arguments) {
			calls++
			persistedAt = calls
		}).Return(nil).Once()

		mockAuditUC.On("Record", mock.Anything, actor, accessDomain.AuditActionCreated,
			mock.MatchedBy(func(key *accessDomain.Key) bool {
				return key.Username == "bob"
			})).Run(func(mock.Arguments) {
			calls++
			auditedAt = calls
		}).Return(&accessDomain.AuditLog{}, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, mockAuditUC)
		key, err := uc.Create(ctx, actor, input)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, key.ID)
		assert.Equal(t, "bob", key.Username)
		assert.Greater(t, auditedAt, persistedAt, "audit entry must follow persistence")
		mockKeyRepo.AssertExpectations(t)
		mockAuditUC.AssertExpectations(t)
	})

	t.Run("BlankUsername", func(t *testing.T) {
		uc := newKeyUseCase(new(mocks.MockKeyRepository), new(mocks.MockAuditLogUseCase))
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)

		_, err := uc.Create(ctx, actor, &accessDomain.CreateKeyInput{
			Username: "   ", Value: "v", Role: accessDomain.RoleUser,
		})

		assert.ErrorIs(t, err, accessDomain.ErrUsernameRequired)
	})

	t.Run("BlankValue", func(t *testing.T) {
		uc := newKeyUseCase(new(mocks.MockKeyRepository), new(mocks.MockAuditLogUseCase))
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)

		_, err := uc.Create(ctx, actor, &accessDomain.CreateKeyInput{
			Username: "bob", Value: "", Role: accessDomain.RoleUser,
		})

		assert.ErrorIs(t, err, accessDomain.ErrKeyValueRequired)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		uc := newKeyUseCase(new(mocks.MockKeyRepository), new(mocks.MockAuditLogUseCase))
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)

		_, err := uc.Create(ctx, actor, &accessDomain.CreateKeyInput{
			Username: "bob", Value: "v", Role: accessDomain.Role("owner"),
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("UsernameTaken", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)
		existing := testKey("bob", "other-secret", accessDomain.RoleUser)

		mockKeyRepo.On("GetByUsername", mock.Anything, "bob").Return(existing, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		_, err := uc.Create(ctx, actor, &accessDomain.CreateKeyInput{
			Username: "bob", Value: "v", Role: accessDomain.RoleUser,
		})

		assert.ErrorIs(t, err, accessDomain.ErrUsernameTaken)
	})

	t.Run("ValueTaken", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)
		existing := testKey("carol", "shared-secret", accessDomain.RoleUser)

		mockKeyRepo.On("GetByUsername", mock.Anything, "bob").
			Return(nil, accessDomain.ErrKeyNotFound).Once()
		mockKeyRepo.On("GetByValue", mock.Anything, "shared-secret").Return(existing, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		_, err := uc.Create(ctx, actor, &accessDomain.CreateKeyInput{
			Username: "bob", Value: "shared-secret", Role: accessDomain.RoleUser,
		})

		assert.ErrorIs(t, err, accessDomain.ErrKeyValueTaken)
	})

	t.Run("RoleAssignmentForbidden", func(t *testing.T) {
		// An admin may not mint a creator; only creators and developers can.
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("alice", "alice-secret", accessDomain.RoleAdmin)

		mockKeyRepo.On("GetByUsername", mock.Anything, "bob").
			Return(nil, accessDomain.ErrKeyNotFound).Once()
		mockKeyRepo.On("GetByValue", mock.Anything, "v").
			Return(nil, accessDomain.ErrKeyNotFound).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		_, err := uc.Create(ctx, actor, &accessDomain.CreateKeyInput{
			Username: "bob", Value: "v", Role: accessDomain.RoleCreator,
		})

		assert.ErrorIs(t, err, accessDomain.ErrNotPermitted)
		mockKeyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("AdminCanMintAdmin", func(t *testing.T) {
		// The user and admin roles are assignable by every actor.
		mockKeyRepo := new(mocks.MockKeyRepository)
		mockAuditLog := new(mocks.MockAuditLogUseCase)
		actor := testKey("alice", "alice-secret", accessDomain.RoleAdmin)

		mockKeyRepo.On("GetByUsername", mock.Anything, "bob").
			Return(nil, accessDomain.ErrKeyNotFound).Once()
		mockKeyRepo.On("GetByValue", mock.Anything, "v").
			Return(nil, accessDomain.ErrKeyNotFound).Once()
		mockKeyRepo.On("Create", mock.Anything, mock.MatchedBy(func(key *accessDomain.Key) bool {
			return key.Username == "bob" && key.Role == accessDomain.RoleAdmin
		})).Return(nil).Once()
		mockAuditLog.On("Record", mock.Anything, actor, accessDomain.AuditActionCreated, mock.Anything).
			Return(&accessDomain.AuditLog{}, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, mockAuditLog)
		key, err := uc.Create(ctx, actor, &accessDomain.CreateKeyInput{
			Username: "bob", Value: "v", Role: accessDomain.RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, accessDomain.RoleAdmin, key.Role)
		mockKeyRepo.AssertExpectations(t)
	})

	t.Run("DeveloperRoleNeverAssignable", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)

		mockKeyRepo.On("GetByUsername", mock.Anything, "bob").
			Return(nil, accessDomain.ErrKeyNotFound).Once()
		mockKeyRepo.On("GetByValue", mock.Anything, "v").
			Return(nil, accessDomain.ErrKeyNotFound).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		_, err := uc.Create(ctx, actor, &accessDomain.CreateKeyInput{
			Username: "bob", Value: "v", Role: accessDomain.RoleDeveloper,
		})

		assert.ErrorIs(t, err, accessDomain.ErrNotPermitted)
	})

	t.Run("AuditFailureFailsCreate", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		mockAuditUC := new(mocks.MockAuditLogUseCase)
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)

		mockKeyRepo.On("GetByUsername", mock.Anything, "bob").
			Return(nil, accessDomain.ErrKeyNotFound).Once()
		mockKeyRepo.On("GetByValue", mock.Anything, "v").
			Return(nil, accessDomain.ErrKeyNotFound).Once()
		mockKeyRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		mockAuditUC.On("Record", mock.Anything, actor, accessDomain.AuditActionCreated, mock.Anything).
			Return(nil, apperrors.New("insert failed")).Once()

		uc := newKeyUseCase(mockKeyRepo, mockAuditUC)
		_, err := uc.Create(ctx, actor, &accessDomain.CreateKeyInput{
			Username: "bob", Value: "v", Role: accessDomain.RoleUser,
		})

		assert.Error(t, err)
	})
}

// TestDefaultKeyUseCase_Delete tests key deletion with auditing.
func TestDefaultKeyUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_AuditsPreDeletionSnapshot", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		mockAuditUC := new(mocks.MockAuditLogUseCase)
		actor := testKey("alice", "alice-secret", accessDomain.RoleAdmin)
		target := testKey("bob", "bob-secret", accessDomain.RoleUser)

		mockKeyRepo.On("GetByID", mock.Anything, target.ID).Return(target, nil).Once()
		mockAuditUC.On("Record", mock.Anything, actor, accessDomain.AuditActionDeleted, target).
			Return(&accessDomain.AuditLog{}, nil).Once()
		mockKeyRepo.On("Delete", mock.Anything, target.ID).Return(nil).Once()

		uc := newKeyUseCase(mockKeyRepo, mockAuditUC)
		require.NoError(t, uc.Delete(ctx, actor, target.ID))
		mockKeyRepo.AssertExpectations(t)
		mockAuditUC.AssertExpectations(t)
	})

	t.Run("AbsentKeyIsSuccessWithoutAudit", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		mockAuditUC := new(mocks.MockAuditLogUseCase)
		actor := testKey("alice", "alice-secret", accessDomain.RoleAdmin)
		id := uuid.Must(uuid.NewV7())

		mockKeyRepo.On("GetByID", mock.Anything, id).
			Return(nil, accessDomain.ErrKeyNotFound).Once()

		uc := newKeyUseCase(mockKeyRepo, mockAuditUC)
		require.NoError(t, uc.Delete(ctx, actor, id))
		mockAuditUC.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockKeyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("AdminCannotDeleteAdmin", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("alice", "alice-secret", accessDomain.RoleAdmin)
		target := testKey("carol", "carol-secret", accessDomain.RoleAdmin)

		mockKeyRepo.On("GetByID", mock.Anything, target.ID).Return(target, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		err := uc.Delete(ctx, actor, target.ID)

		assert.ErrorIs(t, err, accessDomain.ErrNotPermitted)
		mockKeyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("NoSelfDeleteEvenForDeveloper", func(t *testing.T) {
		// Self-deletion is matched by secret value, the identity a session
		// actually holds.
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)
		target := *actor

		mockKeyRepo.On("GetByID", mock.Anything, actor.ID).Return(&target, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		err := uc.Delete(ctx, actor, actor.ID)

		assert.ErrorIs(t, err, accessDomain.ErrNotPermitted)
	})

	t.Run("DeveloperTargetIsShielded", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)
		target := testKey("root2", "root2-secret", accessDomain.RoleDeveloper)

		mockKeyRepo.On("GetByID", mock.Anything, target.ID).Return(target, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		err := uc.Delete(ctx, actor, target.ID)

		assert.ErrorIs(t, err, accessDomain.ErrNotPermitted)
	})
}

// TestDefaultKeyUseCase_Rotate tests in-place secret rotation.
func TestDefaultKeyUseCase_Rotate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_NoAuditEntry", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		mockAuditUC := new(mocks.MockAuditLogUseCase)
		actor := testKey("alice", "old-secret", accessDomain.RoleAdmin)

		mockKeyRepo.On("GetByValue", mock.Anything, "new-secret").
			Return(nil, accessDomain.ErrKeyNotFound).Once()
		mockKeyRepo.On("UpdateValue", mock.Anything, actor.ID, "new-secret", mock.Anything).Return(nil).Once()

		uc := newKeyUseCase(mockKeyRepo, mockAuditUC)
		updated, err := uc.Rotate(ctx, actor, "new-secret")

		require.NoError(t, err)
		assert.Equal(t, actor.ID, updated.ID)
		assert.Equal(t, actor.Username, updated.Username)
		assert.Equal(t, actor.Role, updated.Role)
		assert.Equal(t, "new-secret", updated.Value)
		mockAuditUC.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BlankValue", func(t *testing.T) {
		uc := newKeyUseCase(new(mocks.MockKeyRepository), new(mocks.MockAuditLogUseCase))
		actor := testKey("alice", "old-secret", accessDomain.RoleAdmin)

		_, err := uc.Rotate(ctx, actor, "  ")

		assert.ErrorIs(t, err, accessDomain.ErrKeyValueRequired)
	})

	t.Run("ValueHeldByAnotherKey", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("alice", "old-secret", accessDomain.RoleAdmin)
		other := testKey("bob", "taken-secret", accessDomain.RoleUser)

		mockKeyRepo.On("GetByValue", mock.Anything, "taken-secret").Return(other, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		_, err := uc.Rotate(ctx, actor, "taken-secret")

		assert.ErrorIs(t, err, accessDomain.ErrKeyValueTaken)
	})

	t.Run("ResubmittingOwnValueIsNotAConflict", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("alice", "same-secret", accessDomain.RoleAdmin)

		mockKeyRepo.On("GetByValue", mock.Anything, "same-secret").Return(actor, nil).Once()
		mockKeyRepo.On("UpdateValue", mock.Anything, actor.ID, "same-secret", mock.Anything).Return(nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		_, err := uc.Rotate(ctx, actor, "same-secret")

		require.NoError(t, err)
	})
}

// TestDefaultKeyUseCase_RevealValue tests gated secret disclosure.
func TestDefaultKeyUseCase_RevealValue(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminSeesUserValue", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("alice", "alice-secret", accessDomain.RoleAdmin)
		target := testKey("bob", "bob-secret", accessDomain.RoleUser)

		mockKeyRepo.On("GetByID", mock.Anything, target.ID).Return(target, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		value, err := uc.RevealValue(ctx, actor, target.ID)

		require.NoError(t, err)
		assert.Equal(t, "bob-secret", value)
	})

	t.Run("AdminCannotSeePeerAdmin", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("alice", "alice-secret", accessDomain.RoleAdmin)
		target := testKey("carol", "carol-secret", accessDomain.RoleAdmin)

		mockKeyRepo.On("GetByID", mock.Anything, target.ID).Return(target, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		_, err := uc.RevealValue(ctx, actor, target.ID)

		assert.ErrorIs(t, err, accessDomain.ErrNotPermitted)
	})

	t.Run("DeveloperValueHiddenFromOthers", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)
		target := testKey("root2", "root2-secret", accessDomain.RoleDeveloper)

		mockKeyRepo.On("GetByID", mock.Anything, target.ID).Return(target, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		_, err := uc.RevealValue(ctx, actor, target.ID)

		assert.ErrorIs(t, err, accessDomain.ErrNotPermitted)
	})

	t.Run("SelfRevealAlwaysAllowed", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)

		mockKeyRepo.On("GetByID", mock.Anything, actor.ID).Return(actor, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		value, err := uc.RevealValue(ctx, actor, actor.ID)

		require.NoError(t, err)
		assert.Equal(t, "root-secret", value)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("alice", "alice-secret", accessDomain.RoleAdmin)
		id := uuid.Must(uuid.NewV7())

		mockKeyRepo.On("GetByID", mock.Anything, id).
			Return(nil, accessDomain.ErrKeyNotFound).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		_, err := uc.RevealValue(ctx, actor, id)

		assert.ErrorIs(t, err, accessDomain.ErrKeyNotFound)
	})
}

// TestDefaultKeyUseCase_List tests key listing with value blanking.
func TestDefaultKeyUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("BlanksValuesTheActorMayNotView", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("alice", "alice-secret", accessDomain.RoleAdmin)
		peer := testKey("carol", "carol-secret", accessDomain.RoleAdmin)
		lower := testKey("bob", "bob-secret", accessDomain.RoleUser)

		mockKeyRepo.On("List", mock.Anything).
			Return([]*accessDomain.Key{actor, peer, lower}, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		keys, err := uc.List(ctx, actor)

		require.NoError(t, err)
		require.Len(t, keys, 3)

		byUsername := map[string]string{}
		for _, key := range keys {
			byUsername[key.Username] = key.Value
		}
		assert.Equal(t, "alice-secret", byUsername["alice"], "own value stays visible")
		assert.Empty(t, byUsername["carol"], "peer admin value is blanked")
		assert.Equal(t, "bob-secret", byUsername["bob"], "subordinate value stays visible")

		// Blanking must not leak back into the stored keys.
		assert.Equal(t, "carol-secret", peer.Value)
	})

	t.Run("DeveloperSeesAllButOtherDevelopers", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)
		otherDev := testKey("root2", "root2-secret", accessDomain.RoleDeveloper)
		creator := testKey("carol", "carol-secret", accessDomain.RoleCreator)

		mockKeyRepo.On("List", mock.Anything).
			Return([]*accessDomain.Key{actor, otherDev, creator}, nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		keys, err := uc.List(ctx, actor)

		require.NoError(t, err)
		byUsername := map[string]string{}
		for _, key := range keys {
			byUsername[key.Username] = key.Value
		}
		assert.Equal(t, "root-secret", byUsername["root"])
		assert.Empty(t, byUsername["root2"])
		assert.Equal(t, "carol-secret", byUsername["carol"])
	})
}

// TestDefaultKeyUseCase_History tests the audit log read gate.
func TestDefaultKeyUseCase_History(t *testing.T) {
	ctx := context.Background()

	t.Run("UserForbidden", func(t *testing.T) {
		actor := testKey("bob", "bob-secret", accessDomain.RoleUser)

		uc := newKeyUseCase(new(mocks.MockKeyRepository), new(mocks.MockAuditLogUseCase))
		_, err := uc.History(ctx, actor)

		assert.ErrorIs(t, err, accessDomain.ErrNotPermitted)
	})

	t.Run("AdminAllowed", func(t *testing.T) {
		mockAuditUC := new(mocks.MockAuditLogUseCase)
		actor := testKey("alice", "alice-secret", accessDomain.RoleAdmin)

		mockAuditUC.On("List", ctx).Return([]*accessDomain.AuditLog{{}}, nil).Once()

		uc := newKeyUseCase(new(mocks.MockKeyRepository), mockAuditUC)
		entries, err := uc.History(ctx, actor)

		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

// TestDefaultKeyUseCase_ClearHistory tests the audit log wipe gate.
func TestDefaultKeyUseCase_ClearHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("DeveloperAllowed", func(t *testing.T) {
		mockAuditUC := new(mocks.MockAuditLogUseCase)
		actor := testKey("root", "root-secret", accessDomain.RoleDeveloper)

		mockAuditUC.On("Clear", ctx).Return(nil).Once()

		uc := newKeyUseCase(new(mocks.MockKeyRepository), mockAuditUC)
		require.NoError(t, uc.ClearHistory(ctx, actor))
	})

	t.Run("CreatorForbidden", func(t *testing.T) {
		actor := testKey("carol", "carol-secret", accessDomain.RoleCreator)

		uc := newKeyUseCase(new(mocks.MockKeyRepository), new(mocks.MockAuditLogUseCase))
		err := uc.ClearHistory(ctx, actor)

		assert.ErrorIs(t, err, accessDomain.ErrNotPermitted)
	})
}

// TestDefaultKeyUseCase_Seed tests bootstrap seeding.
func TestDefaultKeyUseCase_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyStoreCreatesDeveloper", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)

		mockKeyRepo.On("Count", mock.Anything).Return(int64(0), nil).Once()
		mockKeyRepo.On("Create", mock.Anything, mock.MatchedBy(func(key *accessDomain.Key) bool {
			return key.Username == "root" &&
				key.Value == "root-secret" &&
				key.Role == accessDomain.RoleDeveloper &&
				key.ExpiresAt == nil
		})).Return(nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		key, seeded, err := uc.Seed(ctx, "root", "root-secret")

		require.NoError(t, err)
		assert.True(t, seeded)
		assert.Equal(t, accessDomain.RoleDeveloper, key.Role)
	})

	t.Run("NonEmptyStoreIsNoOp", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)

		mockKeyRepo.On("Count", mock.Anything).Return(int64(3), nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		key, seeded, err := uc.Seed(ctx, "root", "root-secret")

		require.NoError(t, err)
		assert.False(t, seeded)
		assert.Nil(t, key)
		mockKeyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("GeneratesValueWhenBlank", func(t *testing.T) {
		mockKeyRepo := new(mocks.MockKeyRepository)

		mockKeyRepo.On("Count", mock.Anything).Return(int64(0), nil).Once()
		mockKeyRepo.On("Create", mock.Anything, mock.MatchedBy(func(key *accessDomain.Key) bool {
			return key.Value != ""
		})).Return(nil).Once()

		uc := newKeyUseCase(mockKeyRepo, new(mocks.MockAuditLogUseCase))
		key, seeded, err := uc.Seed(ctx, "root", "")

		require.NoError(t, err)
		assert.True(t, seeded)
		assert.NotEmpty(t, key.Value)
	})

	t.Run("BlankUsername", func(t *testing.T) {
		uc := newKeyUseCase(new(mocks.MockKeyRepository), new(mocks.MockAuditLogUseCase))
		_, _, err := uc.Seed(ctx, " ", "root-secret")

		assert.ErrorIs(t, err, accessDomain.ErrUsernameRequired)
	})
}
