//go:generate goverter gen github.com/coralbay-tech/go-backend/internal/repository/redis/converter

package converter

import (
	"github.com/coralbay-tech/go-backend/internal/usecase"
)

// CatalogSnapshotConverter преобразует срез каталога между usecase и кэш-моделью.
// goverter:converter
// goverter:extend ConvertPointerInt64
type CatalogSnapshotConverter interface {
	ToRedisModel(snapshot *usecase.CatalogSnapshot) *CatalogSnapshotRedisModel
	ToUseCase(model *CatalogSnapshotRedisModel) *usecase.CatalogSnapshot
}

func ConvertPointerInt64(v *int64) *int64 {
	return v
}
