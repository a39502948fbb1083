package ir

// ArrayAdd appends node to the end of arr's children.  It fails with
// ErrInvalidArgument if either argument is nil, and with
// ErrUnsupportedOperation if arr is not an array.
func ArrayAdd(arr, node *Node) error {
	if arr == nil || node == nil {
		return ErrInvalidArgument
	}
	if arr.Type != ArrayType {
		return ErrUnsupportedOperation
	}
	arr.Kids = append(arr.Kids, node)
	return nil
}

// ObjectAdd appends node to the end of obj's members.  It fails with
// ErrInvalidArgument if either argument is nil, and with
// ErrUnsupportedOperation if obj is not an object.
func ObjectAdd(obj, node *Node) error {
	if obj == nil || node == nil {
		return ErrInvalidArgument
	}
	if obj.Type != ObjectType {
		return ErrUnsupportedOperation
	}
	obj.Kids = append(obj.Kids, node)
	return nil
}

// Find searches the tree rooted at node for the first node named key, in
// pre-order: the node's own name is checked before its children, so a
// shallow match wins over a deeper one.  It returns nil if no node
// matches.
func Find(node *Node, key string) *Node {
	if node == nil || key == "" {
		return nil
	}
	if node.Name == key {
		return node
	}
	for _, kid := range node.Kids {
		if found := Find(kid, key); found != nil {
			return found
		}
	}
	return nil
}

// Index returns the i'th child of arr, or nil if arr is not an array or
// i is out of bounds.
func Index(arr *Node, i int) *Node {
	if arr == nil || arr.Type != ArrayType {
		return nil
	}
	if i < 0 || i >= len(arr.Kids) {
		return nil
	}
	return arr.Kids[i]
}

// Attribute returns the member of obj named attribute, scanning only
// obj's own children.  It returns nil if obj is not an object or no
// member matches.
func Attribute(obj *Node, attribute string) *Node {
	if obj == nil || obj.Type != ObjectType || attribute == "" {
		return nil
	}
	for _, kid := range obj.Kids {
		if kid.Name == attribute {
			return kid
		}
	}
	return nil
}

// ArraySize returns the number of children of arr, or -1 if arr is not
// an array.
func ArraySize(arr *Node) int {
	if arr == nil || arr.Type != ArrayType {
		return -1
	}
	return len(arr.Kids)
}

// Iterate applies fn to every child of arr in order.  A failed visit
// does not stop the iteration; the last non-nil error observed is
// returned once all children have been visited.  Iterate fails up front
// with ErrInvalidArgument if arr or fn is nil, and with
// ErrUnsupportedOperation if arr is not an array.
func Iterate(arr *Node, fn func(*Node) error) error {
	if arr == nil || fn == nil {
		return ErrInvalidArgument
	}
	if arr.Type != ArrayType {
		return ErrUnsupportedOperation
	}
	var result error
	for _, kid := range arr.Kids {
		if err := fn(kid); err != nil {
			result = err
		}
	}
	return result
}
