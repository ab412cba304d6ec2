package testsupport

// DuplicateCatalogTOML is a catalog fixture in which two records share an
// identifier and one record carries no identifier at all.
const DuplicateCatalogTOML = `
[[record]]
asset_id = "first"
title = "First Upload"
source_url = "https://youtu.be/AAAAAAAAAAA"
registry_code = "CID-T-001"

[[record]]
asset_id = "broken"
title = "Broken Link"
source_url = "https://example.com/watch"
registry_code = "CID-T-002"

[[record]]
asset_id = "reupload"
title = "Reupload"
source_url = "https://www.youtube.com/embed/AAAAAAAAAAA"
registry_code = "CID-T-003"
`
