package sandbox

import (
	"fmt"
	"strings"
	"text/template"
)

// vagrantfileTemplate renders a manifest into Vagrant's declarative format.
const vagrantfileTemplate = `# -*- mode: ruby -*-
# vi: set ft=ruby :
#
# Generated by volinstall for the {{.Name}} sandbox. Do not edit by hand.

Vagrant.configure("2") do |config|
  config.vm.box = "{{.Box}}"
{{- if .SyncedFolder}}
  config.vm.synced_folder "{{.SyncedFolder.Host}}", "{{.SyncedFolder.Guest}}"
{{- end}}

  config.vm.provider "virtualbox" do |vb|
    vb.memory = "{{.MemoryMB}}"
{{- if gt .CPUs 0}}
    vb.cpus = {{.CPUs}}
{{- end}}
  end

  config.vm.provision "shell", inline: <<-SHELL
    apt-get update
{{- if .Provision.Packages}}
    apt-get install -y {{join .SortedPackages " "}}
{{- end}}
{{- if .Provision.Script}}
    {{.Provision.Script}}
{{- end}}
  SHELL
end
`

// Render emits a Vagrantfile for the manifest. The manifest is validated
// first so the output is always well-formed.
func (m *Manifest) Render() (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}

	tmpl, err := template.New("vagrantfile").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(vagrantfileTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse vagrantfile template: %w", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, m); err != nil {
		return "", fmt.Errorf("failed to render vagrantfile: %w", err)
	}

	return b.String(), nil
}
