package ldbstore

import (
	"io/ioutil"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/timpalpant/kuhn-cfr"
)

// Store keeps every InfoSet gob-encoded in a LevelDB database.
// Store implements cfr.InfoSetStore.
type Store struct {
	dir string
	n   int

	db    *leveldb.DB
	rOpts *opt.ReadOptions
	wOpts *opt.WriteOptions
}

var _ cfr.InfoSetStore = &Store{}

// New creates a new Store backed by a LevelDB database in a fresh
// scratch directory under parentDir. If parentDir is empty the
// default temporary directory is used.
func New(parentDir string, opts *opt.Options) (*Store, error) {
	dir, err := ioutil.TempDir(parentDir, "kuhn-cfr-")
	if err != nil {
		return nil, errors.Wrap(err, "error creating scratch directory")
	}

	db, err := leveldb.OpenFile(dir, opts)
	if err != nil {
		os.RemoveAll(dir)
		return nil, errors.Wrapf(err, "error opening leveldb at %s", dir)
	}

	glog.V(1).Infof("Opened leveldb infoset store at %s", dir)
	return &Store{
		dir: dir,
		db:  db,
	}, nil
}

// Dir returns the scratch directory holding the database.
func (s *Store) Dir() string {
	return s.dir
}

// GetOrCreate implements cfr.InfoSetStore.
func (s *Store) GetOrCreate(key string) *cfr.InfoSet {
	if is, ok := s.Get(key); ok {
		return is
	}

	is := cfr.NewInfoSet(key)
	s.Save(is)
	s.n++
	return is
}

// Save implements cfr.InfoSetStore.
func (s *Store) Save(is *cfr.InfoSet) {
	buf, err := is.MarshalBinary()
	if err != nil {
		panic(errors.Wrapf(err, "error encoding infoset %q", is.Key()))
	}

	if err := s.db.Put([]byte(is.Key()), buf, s.wOpts); err != nil {
		panic(errors.Wrapf(err, "error saving infoset %q", is.Key()))
	}
}

// Get implements cfr.InfoSetStore.
func (s *Store) Get(key string) (*cfr.InfoSet, bool) {
	buf, err := s.db.Get([]byte(key), s.rOpts)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, false
		}

		panic(errors.Wrapf(err, "error loading infoset %q", key))
	}

	is := &cfr.InfoSet{}
	if err := is.UnmarshalBinary(buf); err != nil {
		panic(errors.Wrapf(err, "error decoding infoset %q", key))
	}

	return is, true
}

// Update implements cfr.InfoSetStore. All updated InfoSets are written
// in a single batch.
func (s *Store) Update(discountPos, discountNeg, discountSum float64) {
	batch := new(leveldb.Batch)
	s.ForEach(func(is *cfr.InfoSet) {
		is.NextStrategy(discountPos, discountNeg, discountSum)
		buf, err := is.MarshalBinary()
		if err != nil {
			panic(errors.Wrapf(err, "error encoding infoset %q", is.Key()))
		}

		batch.Put([]byte(is.Key()), buf)
	})

	if err := s.db.Write(batch, s.wOpts); err != nil {
		panic(errors.Wrap(err, "error writing strategy update"))
	}

	glog.V(3).Infof("Updated %d infosets", batch.Len())
}

// ForEach implements cfr.InfoSetStore. LevelDB iterates in key order.
func (s *Store) ForEach(fn func(is *cfr.InfoSet)) {
	iter := s.db.NewIterator(nil, s.rOpts)
	for iter.Next() {
		is := &cfr.InfoSet{}
		if err := is.UnmarshalBinary(iter.Value()); err != nil {
			panic(errors.Wrapf(err, "error decoding infoset %q", iter.Key()))
		}

		fn(is)
	}

	iter.Release()
	if err := iter.Error(); err != nil {
		panic(errors.Wrap(err, "error iterating infosets"))
	}
}

// Len implements cfr.InfoSetStore.
func (s *Store) Len() int {
	return s.n
}

// Close implements io.Closer. It closes the database and removes
// the scratch directory.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "error closing leveldb")
	}

	return errors.Wrapf(os.RemoveAll(s.dir), "error removing %s", s.dir)
}
