package sql

import (
	"embed"
)

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/get_facility.sql
var GetFacility string

//go:embed queries/list_facilities.sql
var ListFacilities string

//go:embed queries/upsert_facility.sql
var UpsertFacility string

//go:embed queries/get_overlay.sql
var GetOverlay string

//go:embed queries/list_overlays.sql
var ListOverlays string

//go:embed queries/upsert_overlay.sql
var UpsertOverlay string

//go:embed queries/upsert_staged_facilities.sql
var UpsertStagedFacilities string

//go:embed queries/delete_staging_batch.sql
var DeleteStagingBatch string
