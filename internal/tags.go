package internal

// Field numbers in descriptor.proto that source code info paths use. Code
// generation does not emit these as constants; they only appear in the
// struct tags of the generated descriptor types.
const (
	FilePackageTag          = 2
	FileDependencyTag       = 3
	FileMessagesTag         = 4
	FileEnumsTag            = 5
	FileServicesTag         = 6
	FileExtensionsTag       = 7
	FileOptionsTag          = 8
	FilePublicDependencyTag = 10
	FileWeakDependencyTag   = 11
	FileSyntaxTag           = 12
	FileEditionTag          = 14

	MessageNameTag            = 1
	MessageFieldsTag          = 2
	MessageNestedMessagesTag  = 3
	MessageEnumsTag           = 4
	MessageExtensionRangesTag = 5
	MessageExtensionsTag      = 6
	MessageOptionsTag         = 7
	MessageOneofsTag          = 8
	MessageReservedRangesTag  = 9
	MessageReservedNamesTag   = 10

	// The same numbers are used by DescriptorProto.ExtensionRange,
	// DescriptorProto.ReservedRange and EnumDescriptorProto.EnumReservedRange.
	ExtensionRangeStartTag   = 1
	ExtensionRangeEndTag     = 2
	ExtensionRangeOptionsTag = 3
	ReservedRangeStartTag    = 1
	ReservedRangeEndTag      = 2

	FieldNameTag     = 1
	FieldExtendeeTag = 2
	FieldNumberTag   = 3
	FieldLabelTag    = 4
	FieldTypeTag     = 5
	FieldTypeNameTag = 6
	FieldOptionsTag  = 8

	OneofNameTag    = 1
	OneofOptionsTag = 2

	EnumNameTag           = 1
	EnumValuesTag         = 2
	EnumOptionsTag        = 3
	EnumReservedRangesTag = 4
	EnumReservedNamesTag  = 5

	EnumValNameTag    = 1
	EnumValNumberTag  = 2
	EnumValOptionsTag = 3

	ServiceNameTag    = 1
	ServiceMethodsTag = 2
	ServiceOptionsTag = 3

	MethodNameTag         = 1
	MethodInputTag        = 2
	MethodOutputTag       = 3
	MethodOptionsTag      = 4
	MethodInputStreamTag  = 5
	MethodOutputStreamTag = 6

	// Every *Options message stores uninterpreted options under this
	// number.
	UninterpretedOptionsTag   = 999
	UninterpretedNameTag      = 2
	UninterpretedIdentTag     = 3
	UninterpretedPosIntTag    = 4
	UninterpretedNegIntTag    = 5
	UninterpretedDoubleTag    = 6
	UninterpretedStringTag    = 7
	UninterpretedAggregateTag = 8
	UninterpretedNameNameTag  = 1
)
