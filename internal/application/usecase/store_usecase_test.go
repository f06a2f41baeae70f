package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/candy-store-api/internal/application/dto"
	"github.com/jhoicas/candy-store-api/internal/application/usecase"
	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/infrastructure/memory"
)

func testStore(name, city, phone string) dto.CreateStoreRequest {
	return dto.CreateStoreRequest{
		Name:           name,
		Street:         "123 Main St",
		City:           city,
		State:          "NY",
		ZipCode:        "12345",
		PhoneNumber:    phone,
		Email:          "teststore@email.com",
		OwnerID:        "507f1f77bcf86cd799439011",
		OperatingHours: "9-5",
		Website:        "http://teststore.com",
	}
}

func seedStores(t *testing.T, uc *usecase.StoreUseCase) (*dto.StoreResponse, *dto.StoreResponse) {
	t.Helper()
	ctx := context.Background()
	s1, err := uc.Create(ctx, testStore("Test Store 1", "Anytown", "+1-555-555-5555"))
	require.NoError(t, err)
	s2, err := uc.Create(ctx, testStore("Test Store 2", "Othertown", "+1-867-530-2222"))
	require.NoError(t, err)
	return s1, s2
}

func TestStore_ListSinMayusculasYVacia(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewStoreUseCase(memory.NewStoreRepository(memory.NewDB()))
	s1, _ := seedStores(t, uc)

	both, err := uc.List(ctx, map[string]string{"name": "test"})
	require.NoError(t, err)
	assert.Len(t, both, 2)

	one, err := uc.List(ctx, map[string]string{"name": "test", "city": "any"})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, s1.ID, one[0].ID)

	none, err := uc.List(ctx, map[string]string{"city": "Nowhere"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_ListPorTelefono(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewStoreUseCase(memory.NewStoreRepository(memory.NewDB()))
	_, s2 := seedStores(t, uc)

	for _, param := range []string{"phone", "phone_number"} {
		got, err := uc.List(ctx, map[string]string{param: "867"})
		require.NoError(t, err)
		require.Len(t, got, 1, "param %s", param)
		assert.Equal(t, s2.ID, got[0].ID)
	}
}

func TestStore_CreateValida(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewStoreUseCase(memory.NewStoreRepository(memory.NewDB()))

	in := testStore("", "Anytown", "")
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = testStore("X", "Anytown", "")
	in.OwnerID = ""
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = testStore("X", "Anytown", "")
	in.Email = "no-es-email"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = testStore("X", "Anytown", "")
	in.Email = "Shop <shop@email.com>"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no se guardan emails con nombre visible")
}

func TestStore_EmailSeNormaliza(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewStoreUseCase(memory.NewStoreRepository(memory.NewDB()))

	in := testStore("X", "Anytown", "")
	in.Email = " Shop@Email.com "
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "shop@email.com", created.Email)

	updated, err := uc.Update(ctx, created.ID, dto.UpdateStoreRequest{Email: strPtr("Ventas@Email.com")})
	require.NoError(t, err)
	assert.Equal(t, "ventas@email.com", updated.Email)

	updated, err = uc.Update(ctx, created.ID, dto.UpdateStoreRequest{Email: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Email, "email vacío borra el valor")
}

func TestStore_UpdateParcialYDelete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewStoreUseCase(memory.NewStoreRepository(memory.NewDB()))
	s1, _ := seedStores(t, uc)

	updated, err := uc.Update(ctx, s1.ID, dto.UpdateStoreRequest{Name: strPtr("Updated Store 1")})
	require.NoError(t, err)
	assert.Equal(t, "Updated Store 1", updated.Name)
	assert.Equal(t, "Anytown", updated.City)
	assert.Equal(t, "+1-555-555-5555", updated.PhoneNumber)

	_, err = uc.Update(ctx, s1.ID, dto.UpdateStoreRequest{City: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, s1.ID, dto.UpdateStoreRequest{Email: strPtr("mal")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByID(ctx, s1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Store 1", got.Name)

	require.NoError(t, uc.Delete(ctx, s1.ID))
	_, err = uc.GetByID(ctx, s1.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, s1.ID), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "bad"), domain.ErrInvalidID)
	_, err = uc.GetByID(ctx, entity.NewID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
