package resource

type Catalog struct {
	Items []Item `yaml:"items"`
}

// Item names one downloadable archive. The name is used unmodified both as the
// URL path segment and as the file name on disk.
type Item struct {
	Name string `yaml:"name"`
}

// URL is the literal concatenation of scheme, host and name. Nothing is escaped.
func (i Item) URL(host string) string {
	return "http://" + host + "/" + i.Name
}

func (c *Catalog) Lookup(name string) *Item {
	for index := range c.Items {
		item := &c.Items[index]
		if item.Name == name {
			return item
		}
	}
	return nil
}
