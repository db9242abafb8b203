// Package ymp parses One Click Install repository descriptions (.ymp files)
// into ordered, typed repository descriptors.
//
// A document nests repositories under groups:
//
//	<metapackage>
//	  <group distversion="...">
//	    <repositories>
//	      <repository format="..." alias="..." recommended="true">
//	        <url>...</url>
//	        <name>...</name>
//	        <name lang="de">...</name>
//	      </repository>
//	    </repositories>
//	  </group>
//	</metapackage>
//
// Elements and attributes are matched by local name, so namespaced documents
// parse the same as plain ones. Parse is total: a missing file or malformed
// XML is logged and produces an empty result. Load exposes the same parse
// with an explicit error for callers that need to tell the cases apart.
//
// The package also resolves localized fields for a requested locale, filters
// descriptors by recommendation and distribution version, and validates
// descriptors against an embedded JSON schema.
package ymp
