package ir

// Bulk constructors turning native slices into arrays of scalar nodes.

func FromInts(vs []int) *Node {
	res := Array()
	for _, v := range vs {
		res.Append(FromInt(int64(v)))
	}
	return res
}

func FromFloat32s(vs []float32) *Node {
	res := Array()
	for _, v := range vs {
		res.Append(FromFloat(float64(v)))
	}
	return res
}

func FromFloat64s(vs []float64) *Node {
	res := Array()
	for _, v := range vs {
		res.Append(FromFloat(v))
	}
	return res
}

func FromStrings(vs []string) *Node {
	res := Array()
	for _, v := range vs {
		res.Append(FromString(v))
	}
	return res
}
