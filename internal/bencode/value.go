package bencode

// Value is one node of a decoded bencode tree: String, Int, List or Dict.
type Value interface {
	isValue()
}

// String is a raw byte string. It is not guaranteed to be valid UTF-8.
type String []byte

// Int is a bencode integer.
type Int int64

// List is an ordered list of values.
type List []Value

// Entry is a single key/value pair of a Dict.
type Entry struct {
	Key   string
	Value Value
}

// Dict keeps its entries in the order they were encountered.
type Dict []Entry

func (String) isValue() {}
func (Int) isValue()    {}
func (List) isValue()   {}
func (Dict) isValue()   {}

// Get returns the value stored under key. Keys are matched byte for byte.
func (d Dict) Get(key string) (Value, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the dictionary keys in encounter order.
func (d Dict) Keys() []string {
	keys := make([]string, len(d))
	for i, e := range d {
		keys[i] = e.Key
	}
	return keys
}

// TypeName names the variant of v for error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case String:
		return "byte string"
	case Int:
		return "integer"
	case List:
		return "list"
	case Dict:
		return "dictionary"
	case nil:
		return "nothing"
	default:
		return "unknown"
	}
}
