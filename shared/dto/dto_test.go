package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"lodge/shared/constant"
	"lodge/shared/dto"
	"lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := createdAt.Add(time.Hour)

	var got dto.Metadata
	got.FromModel(model.Metadata{CreatedAt: createdAt, ModifiedAt: modifiedAt, CreatedBy: "guest", ModifiedBy: "admin-1"})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), got.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), got.ModifiedAt)
	assert.Equal(t, "guest", got.CreatedBy)
	assert.Equal(t, "admin-1", got.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		defaults bool
		want     dto.QueryParams
	}{
		{
			name:  "all parameters",
			query: "?page=2&limit=20&sort_by=check_in_date&sort_dir=asc",
			want:  dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in_date", SortDir: "ASC"},
		},
		{
			name:     "defaults applied",
			query:    "",
			defaults: true,
			want:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:  "no defaults",
			query: "",
			want:  dto.QueryParams{},
		},
		{
			name:     "invalid numbers and direction ignored",
			query:    "?page=-1&limit=abc&sort_dir=sideways",
			defaults: true,
			want:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/bookings"+tt.query, nil)

			var got dto.QueryParams
			got.FromRequest(req, tt.defaults)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryParams_DefaultSort(t *testing.T) {
	params := dto.QueryParams{}
	params.DefaultSort(constant.FieldCreatedAt, dto.SortDirDesc)
	assert.Equal(t, dto.QueryParams{SortBy: "created_at", SortDir: "DESC"}, params)

	params = dto.QueryParams{SortBy: "check_in_date", SortDir: dto.SortDirAsc}
	params.DefaultSort(constant.FieldCreatedAt, dto.SortDirDesc)
	assert.Equal(t, "check_in_date", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "room_id", Value: "r-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.room_id = :room_id",
			wantArgs:  map[string]any{"room_id": "r-1"},
		},
		{
			name:      "in expands slice",
			filter:    dto.Filter{Field: "status", Value: []string{"CONFIRMED", "PENDING_PAYMENT"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "CONFIRMED", "status_1": "PENDING_PAYMENT"},
		},
		{
			name:      "not eq uses arg name",
			filter:    dto.Filter{ArgName: "exclude_id", Field: "id", Value: "b-1", Operator: dto.FilterOperatorNotEq},
			wantWhere: "id != :exclude_id",
			wantArgs:  map[string]any{"exclude_id": "b-1"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "processed_at", Operator: dto.FilterIsNull},
			wantWhere: "processed_at IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r-1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "s1", Field: "status", Value: "CONFIRMED", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "s2", Field: "status", Value: "PENDING_PAYMENT", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_id = :room_id AND (status = :s1 OR status = :s2))", where)
	assert.Len(t, args, 3)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
