package diagnostic

// Diagnostic codes used across the pipeline. Errors abort generation;
// infos are advisory only.
const (
	// CodeMarkerConflict: marked and unmarked requested together.
	CodeMarkerConflict = "E001"
	// CodeBadRecordShape: record is not a plain named-field struct.
	CodeBadRecordShape = "E002"
	// CodeAccessorCollision: two fields derive the same accessor name.
	CodeAccessorCollision = "E003"
	// CodeNamespaceCollision: two records derive the same namespace prefix.
	CodeNamespaceCollision = "E004"
	// CodeModeConflict: component and resource requested together.
	CodeModeConflict = "E005"
	// CodeManifestInvalid: manifest fails structural validation.
	CodeManifestInvalid = "E006"
	// CodeRecordNotFound: manifest names a record the scan does not contain.
	CodeRecordNotFound = "E007"
	// CodeDeclCollision: derived name collides with an existing declaration.
	CodeDeclCollision = "E008"
	// CodeGenericRecord: record declares type parameters.
	CodeGenericRecord = "E009"
	// CodeUnknownDirective: unrecognized directive name, ignored.
	CodeUnknownDirective = "I001"
	// CodeIneffectiveDirective: marker directive on a record no mode selects.
	CodeIneffectiveDirective = "I002"
)
