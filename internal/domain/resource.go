package domain

// Resource identifies the kind of entity an authorization check targets.
// Every resource resolves to its owning project before rights are checked.
type Resource string

const (
	ResourceProject        Resource = "project"
	ResourceDataset        Resource = "dataset"
	ResourceObjectGroup    Resource = "object_group"
	ResourceRevision       Resource = "object_group_revision"
	ResourceDatasetVersion Resource = "dataset_version"
	ResourceObject         Resource = "object"
)

// IsValid checks if the resource kind is valid.
func (r Resource) IsValid() bool {
	switch r {
	case ResourceProject, ResourceDataset, ResourceObjectGroup,
		ResourceRevision, ResourceDatasetVersion, ResourceObject:
		return true
	default:
		return false
	}
}
