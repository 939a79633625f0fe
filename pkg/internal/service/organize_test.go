package service_test

import (
	contextPkg "context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	ctxPkg "github.com/Himan2899/SmartFileOrganizer/pkg/context"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/classify"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/model"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/service"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage"
	dbc "github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/db"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
)

// newTestOrganizeService backs the engine with an in-memory database. S3 and
// MQ stay nil, which the engine tolerates: originals are not stored and
// events are not published.
func newTestOrganizeService(t *testing.T) (*service.OrganizeService, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := gdb.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mgr := &storage.Manager{DB: &dbc.Client{DB: gdb}}
	ctx := ctxPkg.WithStorageManager(contextPkg.Background(), mgr)

	return service.NewOrganizeService(ctx), gdb
}

func contentFile(name, content string, modified time.Time) *classify.InputFile {
	return &classify.InputFile{
		Name:         name,
		Size:         int64(len(content)),
		LastModified: modified,
		ContentType:  "application/octet-stream",
		Content:      []byte(content),
	}
}

func TestOrganizeBatch(t *testing.T) {
	svc, gdb := newTestOrganizeService(t)

	modified := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	files := []*classify.InputFile{
		contentFile("report.pdf", "quarterly numbers", modified),
		contentFile("scratch.tmp", "junk", modified),
		contentFile("copy.pdf", "quarterly numbers", modified),
		contentFile("photo.png", "pixels", modified),
	}

	rules := &types.OrganizationRules{
		OrganizeByType:   true,
		DetectDuplicates: true,
		IgnoredTypes:     []string{".tmp"},
	}

	resp, err := svc.Organize(contextPkg.Background(), files, rules)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}

	if resp.BatchID == "" {
		t.Fatal("expected a batch id")
	}

	// the ignored file is excluded and input order is preserved
	wantNames := []string{"report.pdf", "copy.pdf", "photo.png"}
	if len(resp.Files) != len(wantNames) {
		t.Fatalf("expected %d files, got %d", len(wantNames), len(resp.Files))
	}

	for i, want := range wantNames {
		if resp.Files[i].FileName != want {
			t.Errorf("file %d: expected %q, got %q", i, want, resp.Files[i].FileName)
		}
	}

	// only the later file with identical content carries the duplicate flag
	wantDup := []bool{false, true, false}
	for i, want := range wantDup {
		if resp.Files[i].IsDuplicate != want {
			t.Errorf("file %d: duplicate = %v, want %v", i, resp.Files[i].IsDuplicate, want)
		}
	}

	if resp.Files[0].Hash == "" || resp.Files[0].Hash != resp.Files[1].Hash {
		t.Errorf("identical content should hash identically: %q vs %q",
			resp.Files[0].Hash, resp.Files[1].Hash)
	}

	if got := resp.Files[0].OrganizationPath; got != "document/report.pdf" {
		t.Errorf("expected type-based path, got %q", got)
	}

	// without an object store nothing is uploaded
	for i := range resp.Files {
		if resp.Files[i].ObjectKey != "" {
			t.Errorf("file %d: unexpected object key %q", i, resp.Files[i].ObjectKey)
		}
	}

	var batch model.OrganizeBatch
	if err := gdb.First(&batch, "batch_id = ?", resp.BatchID).Error; err != nil {
		t.Fatalf("load batch: %v", err)
	}

	if batch.FileCount != 3 || batch.DuplicateCount != 1 {
		t.Errorf("batch counts = (%d, %d), want (3, 1)", batch.FileCount, batch.DuplicateCount)
	}

	var rows int64
	if err := gdb.Model(&model.OrganizedFile{}).
		Where("batch_id = ?", resp.BatchID).Count(&rows).Error; err != nil {
		t.Fatalf("count files: %v", err)
	}

	if rows != 3 {
		t.Errorf("expected 3 persisted file rows, got %d", rows)
	}
}

func TestOrganizeSameNamedFiles(t *testing.T) {
	svc, _ := newTestOrganizeService(t)

	modified := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	files := []*classify.InputFile{
		contentFile("invoice.pdf", "january", modified),
		contentFile("invoice.pdf", "february", modified),
	}

	rules := &types.OrganizationRules{DetectDuplicates: true}

	resp, err := svc.Organize(contextPkg.Background(), files, rules)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}

	// same name with different content is legal input, not a duplicate
	if len(resp.Files) != 2 {
		t.Fatalf("expected both files, got %d", len(resp.Files))
	}

	if resp.Files[0].IsDuplicate || resp.Files[1].IsDuplicate {
		t.Error("distinct content should not be flagged duplicate")
	}
}
