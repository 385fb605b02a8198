package parser

import (
	"github.com/pbaille/meetbook/internal/command"
	"github.com/pbaille/meetbook/internal/domain"
)

func parseAddPerson(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	if !am.HasAll(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress) || am.Preamble() != "" {
		return nil, invalidFormat(command.AddPersonUsage, nil)
	}

	name, _ := am.Value(PrefixName)
	phone, _ := am.Value(PrefixPhone)
	email, _ := am.Value(PrefixEmail)
	address, _ := am.Value(PrefixAddress)

	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	p, err := ParsePhone(phone)
	if err != nil {
		return nil, err
	}
	e, err := ParseEmail(email)
	if err != nil {
		return nil, err
	}
	a, err := ParseAddress(address)
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(am.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}
	return command.AddPerson{Person: domain.NewPerson(n, p, e, a, tags)}, nil
}

func parseEditPerson(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	idx, err := index(am.Preamble(), command.EditPersonUsage)
	if err != nil {
		return nil, err
	}

	var d command.EditPersonDescriptor
	if v, ok := am.Value(PrefixName); ok {
		n, err := ParseName(v)
		if err != nil {
			return nil, err
		}
		d.Name = &n
	}
	if v, ok := am.Value(PrefixPhone); ok {
		p, err := ParsePhone(v)
		if err != nil {
			return nil, err
		}
		d.Phone = &p
	}
	if v, ok := am.Value(PrefixEmail); ok {
		e, err := ParseEmail(v)
		if err != nil {
			return nil, err
		}
		d.Email = &e
	}
	if v, ok := am.Value(PrefixAddress); ok {
		a, err := ParseAddress(v)
		if err != nil {
			return nil, err
		}
		d.Address = &a
	}
	if d.Tags, err = parseTagsForEdit(am.AllValues(PrefixTag)); err != nil {
		return nil, err
	}

	if !d.IsAnyFieldEdited() {
		return nil, newError(command.MessageNotEdited)
	}
	return command.EditPerson{Index: idx, Descriptor: d}, nil
}

func parseDeletePerson(args string) (command.Command, error) {
	idx, err := index(args, command.DeletePersonUsage)
	if err != nil {
		return nil, err
	}
	return command.DeletePerson{Index: idx}, nil
}

func parseCopyPerson(args string) (command.Command, error) {
	idx, err := index(args, command.CopyPersonUsage)
	if err != nil {
		return nil, err
	}
	return command.CopyPerson{Index: idx}, nil
}

func parseFindPersons(args string) (command.Command, error) {
	kw, err := keywords(args, command.FindPersonUsage)
	if err != nil {
		return nil, err
	}
	return command.FindPersons{Predicate: domain.NameContainsKeywords{Keywords: kw}}, nil
}
