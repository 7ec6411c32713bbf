package prim_kruskal

// disjointSet is a union-find over node indices 0..n-1 with path compression
// and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the representative of u, halving the path on the way up.
func (d *disjointSet) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *disjointSet) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}

	return true
}

// outsideLargest returns, in index order, the nodes that are not eligible or
// lie outside the component with the most eligible nodes. Ties go to the
// component whose first eligible node has the smallest index.
func (d *disjointSet) outsideLargest(eligible []bool) []int {
	n := len(d.parent)
	size := make(map[int]int, n)
	first := make(map[int]int, n)
	for i := 0; i < n; i++ {
		if !eligible[i] {
			continue
		}
		r := d.find(i)
		if _, ok := first[r]; !ok {
			first[r] = i
		}
		size[r]++
	}

	best := -1
	for i := 0; i < n; i++ {
		if !eligible[i] {
			continue
		}
		r := d.find(i)
		if first[r] != i {
			continue
		}
		if best < 0 || size[r] > size[best] {
			best = r
		}
	}

	var out []int
	for i := 0; i < n; i++ {
		if !eligible[i] || d.find(i) != best {
			out = append(out, i)
		}
	}

	return out
}
