package services

import (
	"testing"

	"busbackend/internal/domain"
	"busbackend/internal/grid"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSaveLayoutPersistsDecodedSeats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO layouts").
		WithArgs("Super Deluxe Layout").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectExec("INSERT INTO seats").
		WithArgs(int64(4), "A", 0, 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO seats").
		WithArgs(int64(4), "B", 1, 0).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	svc := LayoutService{DB: db}
	layout, err := svc.SaveLayout("super deluxe layout", grid.Grid{
		{{IsActive: true, Label: "A"}},
		{{IsActive: true, Label: "B"}},
	})
	if err != nil {
		t.Fatalf("save layout error: %v", err)
	}
	if layout.ID != 4 || layout.Name != "Super Deluxe Layout" {
		t.Fatalf("unexpected layout: %+v", layout)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveLayoutEmptyNameFails(t *testing.T) {
	svc := LayoutService{}
	_, err := svc.SaveLayout("  ", grid.Grid{{{IsActive: true, Label: "A"}}})
	if !domain.IsFormat(err) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestSaveLayoutInactiveOnlyGridStoresNoSeats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO layouts").
		WithArgs("Empty Hull").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	svc := LayoutService{DB: db}
	if _, err := svc.SaveLayout("Empty Hull", grid.Grid{
		{{IsActive: false, Label: "none"}, {IsActive: false, Label: "none"}},
	}); err != nil {
		t.Fatalf("save layout error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetLayoutEncodesGrid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name FROM layouts").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(4, "Super Deluxe Layout"))
	mock.ExpectQuery("FROM seats WHERE layout_id").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "layout_id", "label", "row_no", "col_no"}).
			AddRow(1, 4, "A", 0, 0).
			AddRow(2, 4, "B", 1, 0))

	svc := LayoutService{DB: db}
	layout, g, err := svc.GetLayout(4)
	if err != nil {
		t.Fatalf("get layout error: %v", err)
	}
	if layout.Name != "Super Deluxe Layout" {
		t.Fatalf("unexpected layout: %+v", layout)
	}
	if len(g) != 2 || len(g[0]) != 1 {
		t.Fatalf("unexpected grid shape: %+v", g)
	}
	if !g[0][0].IsActive || g[0][0].Label != "A" || !g[1][0].IsActive || g[1][0].Label != "B" {
		t.Fatalf("unexpected grid: %+v", g)
	}
}

func TestDeleteLayoutIsReadOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name FROM layouts").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(4, "Super Deluxe Layout"))

	svc := LayoutService{DB: db}
	if err := svc.DeleteLayout(4); !domain.IsReadOnly(err) {
		t.Fatalf("expected ReadOnlyViolation, got %v", err)
	}
}

func TestUpdateMissingLayoutIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name FROM layouts").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	svc := LayoutService{DB: db}
	if err := svc.UpdateLayout(99); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
