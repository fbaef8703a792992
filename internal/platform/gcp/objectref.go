package gcp

import (
	"fmt"
	"strings"
)

// ObjectRef is a colon-separated blob reference, scheme:bucket:object.
// Object names carry an upload prefix, so the user-facing filename is the
// suffix after the last dash.
type ObjectRef struct {
	Scheme string
	Bucket string
	Object string
}

func ParseObjectRef(ref string) (ObjectRef, error) {
	parts := strings.Split(ref, ":")
	if len(parts) < 3 {
		return ObjectRef{}, fmt.Errorf("invalid object ref %q: want scheme:bucket:object", ref)
	}
	out := ObjectRef{
		Scheme: parts[0],
		Bucket: parts[1],
		Object: parts[len(parts)-1],
	}
	if out.Bucket == "" || out.Object == "" {
		return ObjectRef{}, fmt.Errorf("invalid object ref %q: empty bucket or object", ref)
	}
	return out, nil
}

func (r ObjectRef) Filename() string {
	idx := strings.LastIndex(r.Object, "-")
	if idx < 0 || idx == len(r.Object)-1 {
		return r.Object
	}
	return r.Object[idx+1:]
}

func (r ObjectRef) String() string {
	return r.Scheme + ":" + r.Bucket + ":" + r.Object
}
